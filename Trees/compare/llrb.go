package compare

import (
	"cmp"

	"github.com/petar/GoLLRB/llrb"
)

// item wraps a value to satisfy llrb.Item.
type item[T cmp.Ordered] struct {
	v T
}

func (a item[T]) Less(b llrb.Item) bool {
	return a.v < b.(item[T]).v
}

// LLRB is the left-leaning red-black tree of github.com/petar/GoLLRB.
type LLRB[T cmp.Ordered] struct {
	t *llrb.LLRB
}

func NewLLRB[T cmp.Ordered]() *LLRB[T] {
	return &LLRB[T]{llrb.New()}
}

func (u *LLRB[T]) Insert(v T) bool {
	if u.t.Has(item[T]{v}) {
		return false
	}
	u.t.ReplaceOrInsert(item[T]{v})
	return true
}

func (u *LLRB[T]) Remove(v T) bool {
	return u.t.Delete(item[T]{v}) != nil
}

func (u *LLRB[T]) Has(v T) bool {
	return u.t.Has(item[T]{v})
}

func (u *LLRB[T]) Size() uint {
	return uint(u.t.Len())
}

func (u *LLRB[T]) Minimum() (T, bool) {
	if m := u.t.Min(); m != nil {
		return m.(item[T]).v, true
	}
	return *new(T), false
}

func (u *LLRB[T]) Maximum() (T, bool) {
	if m := u.t.Max(); m != nil {
		return m.(item[T]).v, true
	}
	return *new(T), false
}

func (u *LLRB[T]) Successor(v T) (r T, found bool) {
	if !u.t.Has(item[T]{v}) {
		return
	}
	u.t.AscendGreaterOrEqual(item[T]{v}, func(x llrb.Item) bool {
		if x.(item[T]).v == v {
			return true
		}
		r, found = x.(item[T]).v, true
		return false
	})
	return
}

func (u *LLRB[T]) InOrder() func() (T, bool) {
	s := make([]T, 0, u.t.Len())
	if m := u.t.Min(); m != nil {
		u.t.AscendGreaterOrEqual(m, func(x llrb.Item) bool {
			s = append(s, x.(item[T]).v)
			return true
		})
	}
	return iterate(s)
}

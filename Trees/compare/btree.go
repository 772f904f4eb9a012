package compare

import (
	"cmp"

	"github.com/google/btree"
)

// BTree is the generic B-tree of github.com/google/btree.
type BTree[T cmp.Ordered] struct {
	t *btree.BTreeG[T]
}

// NewBTree with the given degree, 2 if degree<2.
func NewBTree[T cmp.Ordered](degree int) *BTree[T] {
	return &BTree[T]{btree.NewG[T](max(degree, 2), cmp.Less[T])}
}

func (u *BTree[T]) Insert(v T) bool {
	if u.t.Has(v) {
		return false
	}
	u.t.ReplaceOrInsert(v)
	return true
}

func (u *BTree[T]) Remove(v T) bool {
	_, found := u.t.Delete(v)
	return found
}

func (u *BTree[T]) Has(v T) bool {
	return u.t.Has(v)
}

func (u *BTree[T]) Size() uint {
	return uint(u.t.Len())
}

func (u *BTree[T]) Minimum() (T, bool) {
	return u.t.Min()
}

func (u *BTree[T]) Maximum() (T, bool) {
	return u.t.Max()
}

func (u *BTree[T]) Successor(v T) (r T, found bool) {
	if !u.t.Has(v) {
		return
	}
	u.t.AscendGreaterOrEqual(v, func(x T) bool {
		if x == v {
			return true
		}
		r, found = x, true
		return false
	})
	return
}

func (u *BTree[T]) InOrder() func() (T, bool) {
	s := make([]T, 0, u.t.Len())
	u.t.Ascend(func(x T) bool {
		s = append(s, x)
		return true
	})
	return iterate(s)
}

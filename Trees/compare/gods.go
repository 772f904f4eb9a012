package compare

import (
	"cmp"

	"github.com/emirpasic/gods/trees/avltree"
)

// GodsAVL is the AVL tree of github.com/emirpasic/gods, keyed by the values
// with empty payloads.
type GodsAVL[T cmp.Ordered] struct {
	t *avltree.Tree
}

func NewGodsAVL[T cmp.Ordered]() *GodsAVL[T] {
	return &GodsAVL[T]{avltree.NewWith(func(a, b interface{}) int {
		return cmp.Compare(a.(T), b.(T))
	})}
}

func (u *GodsAVL[T]) Insert(v T) bool {
	if _, found := u.t.Get(v); found {
		return false
	}
	u.t.Put(v, struct{}{})
	return true
}

func (u *GodsAVL[T]) Remove(v T) bool {
	if _, found := u.t.Get(v); !found {
		return false
	}
	u.t.Remove(v)
	return true
}

func (u *GodsAVL[T]) Has(v T) bool {
	_, found := u.t.Get(v)
	return found
}

func (u *GodsAVL[T]) Size() uint {
	return uint(u.t.Size())
}

func (u *GodsAVL[T]) Minimum() (T, bool) {
	if n := u.t.Left(); n != nil {
		return n.Key.(T), true
	}
	return *new(T), false
}

func (u *GodsAVL[T]) Maximum() (T, bool) {
	if n := u.t.Right(); n != nil {
		return n.Key.(T), true
	}
	return *new(T), false
}

func (u *GodsAVL[T]) Successor(v T) (T, bool) {
	n, found := u.t.Ceiling(v)
	if !found || n.Key.(T) != v {
		return *new(T), false
	}
	if n = n.Next(); n == nil {
		return *new(T), false
	}
	return n.Key.(T), true
}

func (u *GodsAVL[T]) InOrder() func() (T, bool) {
	ks := u.t.Keys()
	s := make([]T, len(ks))
	for i, k := range ks {
		s[i] = k.(T)
	}
	return iterate(s)
}

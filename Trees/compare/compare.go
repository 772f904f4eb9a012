// Package compare adapts ordered containers from other libraries to
// Trees.Set, so they can be checked against and measured next to
// Trees.SearchTree.
package compare

import (
	"cmp"
	"fmt"

	"github.com/g-m-twostay/go-bst/Trees"
)

// Names of the adapters New accepts.
const (
	NameGodsAVL = "gods-avl"
	NameBTree   = "btree"
	NameLLRB    = "llrb"
)

// Names lists every adapter New can build.
var Names = []string{NameGodsAVL, NameBTree, NameLLRB}

// New returns an empty adapter by name. degree is only used by btree.
func New[T cmp.Ordered](name string, degree int) (Trees.Set[T], error) {
	switch name {
	case NameGodsAVL:
		return NewGodsAVL[T](), nil
	case NameBTree:
		return NewBTree[T](degree), nil
	case NameLLRB:
		return NewLLRB[T](), nil
	}
	return nil, fmt.Errorf("unknown implementation %q", name)
}

// iterate the values of s, a snapshot taken by one ascending walk.
func iterate[T any](s []T) func() (T, bool) {
	return func() (T, bool) {
		if len(s) == 0 {
			return *new(T), false
		}
		v := s[0]
		s = s[1:]
		return v, true
	}
}

package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// SearchTree is a binary search tree with no repeated values. Whether it
// balances itself is decided by the Policy it's created with.
// T is the type of values it will hold, S is the type of the indexes of the
// nodes, so a tree can hold at most max(S) values. The nodes live in one
// slice, removed nodes are recycled by later insertions, and every node keeps
// the index of its parent so that mutations walk back to the root without
// recursion.
// A SearchTree isn't safe for concurrent use.
type SearchTree[T any, S constraints.Unsigned] struct {
	base[T, S]
	cmp    func(a, b T) int
	policy Policy
}

// New returns an empty tree ordered by cmp.Compare. hint is the number of
// nodes to preallocate.
func New[T cmp.Ordered, S constraints.Unsigned](hint S, p Policy) *SearchTree[T, S] {
	return NewFunc[T, S](hint, p, cmp.Compare[T])
}

// NewFunc returns an empty tree ordered by cmp, which must be a total order
// returning a negative number when a<b, 0 when a==b and a positive number
// when a>b.
func NewFunc[T any, S constraints.Unsigned](hint S, p Policy, cmp func(a, b T) int) *SearchTree[T, S] {
	return &SearchTree[T, S]{makeBase[T, S](hint), cmp, p}
}

// NewOrdered is the NewFunc equivalence for types implementing Ordered.
func NewOrdered[T Ordered[T], S constraints.Unsigned](hint S, p Policy) *SearchTree[T, S] {
	return NewFunc[T, S](hint, p, func(a, b T) int {
		if a.LessThan(b) {
			return -1
		} else if a.Equals(b) {
			return 0
		}
		return 1
	})
}

// From builds a tree using the given sorted slice. This is faster than
// repeatedly calling Insert and the result is balanced whatever p is.
// sorted must be strictly ascending, otherwise From returns an
// InvalidSliceError. If S can't index len(sorted) nodes, it returns a
// CapacityError.
// Time: O(n).
func From[T cmp.Ordered, S constraints.Unsigned](sorted []T, p Policy) (*SearchTree[T, S], error) {
	for i := 1; i < len(sorted); i++ {
		if cmp.Compare(sorted[i-1], sorted[i]) >= 0 {
			return nil, &InvalidSliceError{i, sorted[i-1], sorted[i]}
		}
	}
	if uint64(len(sorted)) > uint64(^S(0)) {
		return nil, &CapacityError{Max: uint64(^S(0))}
	}
	root, ns := buildArena[T, S](sorted)
	return &SearchTree[T, S]{base[T, S]{root: root, sz: S(len(sorted)), ns: ns}, cmp.Compare[T], p}, nil
}

// Policy the tree was created with.
func (u *SearchTree[T, S]) Policy() Policy {
	return u.policy
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *SearchTree[T, S]) Size() uint {
	return uint(u.sz)
}

// Height returns the number of nodes on the longest root-to-leaf path.
// Time: O(1); Space: O(1)
func (u *SearchTree[T, S]) Height() uint {
	return uint(u.height(u.root))
}

// find returns the index holding v, or 0.
// Time: O(D); Space: O(1)
func (u *SearchTree[T, S]) find(v T) S {
	for cur := u.root; cur != 0; {
		if c := u.cmp(v, u.ns[cur].v); c < 0 {
			cur = u.ns[cur].l
		} else if c == 0 {
			return cur
		} else {
			cur = u.ns[cur].r
		}
	}
	return 0
}

// Insert [Tree.Insert]. A value equal to one already in the tree is
// rejected.
// Time: O(D)
func (u *SearchTree[T, S]) Insert(v T) bool {
	var p S
	c := 0
	for cur := u.root; cur != 0; {
		p = cur
		if c = u.cmp(v, u.ns[cur].v); c < 0 {
			cur = u.ns[cur].l
		} else if c == 0 {
			return false
		} else {
			cur = u.ns[cur].r
		}
	}
	i := u.alloc(v, p)
	if p == 0 {
		u.root = i
	} else if c < 0 {
		u.ns[p].l = i
	} else {
		u.ns[p].r = i
	}
	u.sz++
	u.retrace(p)
	u.check()
	return true
}

// Remove [Tree.Remove]. Removing a value that isn't present is a no-op.
// When the node has two children, the greatest value of its left subtree is
// moved into it and the node that held that value is removed instead.
// Time: O(D)
func (u *SearchTree[T, S]) Remove(v T) bool {
	i := u.find(v)
	if i == 0 {
		return false
	}
	if n := &u.ns[i]; n.l != 0 && n.r != 0 {
		j := n.l
		for u.ns[j].r != 0 {
			j = u.ns[j].r
		}
		n.v = u.ns[j].v
		i = j
	}
	n := u.ns[i] // at most one child now
	c := n.l
	if c == 0 {
		c = n.r
	}
	u.setParent(c, n.p)
	u.replaceChild(n.p, i, c)
	u.addFree(i)
	u.sz--
	u.retrace(n.p)
	u.check()
	return true
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *SearchTree[T, S]) Has(v T) bool {
	return u.find(v) != 0
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *SearchTree[T, S]) Minimum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	cur := u.root
	for u.ns[cur].l != 0 {
		cur = u.ns[cur].l
	}
	return u.ns[cur].v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *SearchTree[T, S]) Maximum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	cur := u.root
	for u.ns[cur].r != 0 {
		cur = u.ns[cur].r
	}
	return u.ns[cur].v, true
}

// Clear the tree. The memory for the nodes is kept for later insertions.
// Time: O(n)
func (u *SearchTree[T, S]) Clear() {
	u.clear()
}

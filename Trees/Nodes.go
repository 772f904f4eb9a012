package Trees

import "golang.org/x/exp/constraints"

// A node in the arena of a SearchTree.
// l and r own their subtrees; p only points back up and is never an owning
// edge. Index 0 is the nil slot, which has h=0 and is never written through
// a child's parent link.
type node[T any, S constraints.Unsigned] struct {
	v       T
	l, r, p S
	h       S // height of the subtree rooting here
}

// height of the subtree at i; 0 for the nil slot.
func (u *base[T, S]) height(i S) S {
	return u.ns[i].h
}

// fixHeight recomputes the height of i from its children.
// Time: O(1); Space: O(1)
func (u *base[T, S]) fixHeight(i S) {
	n := &u.ns[i]
	n.h = max(u.ns[n.l].h, u.ns[n.r].h) + 1
}

// balance factor h(l)-h(r) of i.
func (u *base[T, S]) balance(i S) int {
	n := &u.ns[i]
	return int(u.ns[n.l].h) - int(u.ns[n.r].h)
}

// setParent of c to p, skipping the nil slot.
func (u *base[T, S]) setParent(c, p S) {
	if c != 0 {
		u.ns[c].p = p
	}
}

// replaceChild redirects the edge of p that pointed at was to is. p==0
// means was is the root.
func (u *base[T, S]) replaceChild(p, was, is S) {
	if p == 0 {
		u.root = is
	} else if u.ns[p].l == was {
		u.ns[p].l = is
	} else {
		u.ns[p].r = is
	}
}

// rotateLeft lifts the right child of x into the place of x and returns it,
// the new local root.
//
//	  x            y
//	 / \          / \
//	a   y   ->   x   c
//	   / \      / \
//	  b   c    a   b
//
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateLeft(x S) S {
	y := u.ns[x].r
	b := u.ns[y].l
	p := u.ns[x].p

	u.ns[x].r = b
	u.setParent(b, x)

	u.ns[y].l = x
	u.ns[x].p = y

	u.ns[y].p = p
	u.replaceChild(p, x, y)

	u.fixHeight(x)
	u.fixHeight(y)
	return y
}

// rotateRight lifts the left child of x into the place of x and returns it,
// the new local root.
//
//	    x          y
//	   / \        / \
//	  y   c  ->  a   x
//	 / \            / \
//	a   b          b   c
//
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateRight(x S) S {
	y := u.ns[x].l
	b := u.ns[y].r
	p := u.ns[x].p

	u.ns[x].l = b
	u.setParent(b, x)

	u.ns[y].r = x
	u.ns[x].p = y

	u.ns[y].p = p
	u.replaceChild(p, x, y)

	u.fixHeight(x)
	u.fixHeight(y)
	return y
}

// rebalance i if its balance factor is outside [-1,1] and return the root
// of the subtree that now takes the place of i.
func (u *base[T, S]) rebalance(i S) S {
	switch bf := u.balance(i); {
	case bf > 1:
		if l := u.ns[i].l; u.balance(l) < 0 {
			u.rotateLeft(l)
		}
		return u.rotateRight(i)
	case bf < -1:
		if r := u.ns[i].r; u.balance(r) > 0 {
			u.rotateRight(r)
		}
		return u.rotateLeft(i)
	}
	return i
}

package Trees

import (
	"golang.org/x/exp/constraints"
	"math/bits"
)

// base is the arena all nodes of a tree live in.
// ns[0] is the nil slot with every field zero. free is the beginning of the
// linked list that contains all the free indexes; node::l represents next.
type base[T any, S constraints.Unsigned] struct {
	root, free S
	sz         S
	ns         []node[T, S]
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	return base[T, S]{ns: make([]node[T, S], 1, uint(hint)+1)}
}

// addFree index once. The value is zeroed so the slot doesn't keep it alive.
func (u *base[T, S]) addFree(a S) {
	u.ns[a] = node[T, S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ns[u.free].l
	return b
}

// alloc a leaf holding v under parent p, reusing a free index if there is
// one. Panics with CapacityError if S can't index another node.
func (u *base[T, S]) alloc(v T, p S) S {
	if i := u.popFree(); i != 0 {
		u.ns[i] = node[T, S]{v: v, p: p, h: 1}
		return i
	}
	i := S(len(u.ns))
	if int(i) != len(u.ns) {
		panic(&CapacityError{Max: uint64(^S(0))})
	}
	u.ns = append(u.ns, node[T, S]{v: v, p: p, h: 1})
	return i
}

// clear the arena, keeping its capacity. Values are zeroed.
func (u *base[T, S]) clear() {
	clear(u.ns[1:])
	u.ns = u.ns[:1]
	u.root, u.free, u.sz = 0, 0, 0
}

// buildArena lays out sorted as a complete binary tree, where ns[i+1] holds
// sorted[i]. Every subtree is split at its middle, so sibling sizes differ by
// at most one and the height of a subtree of size m is bits.Len(m).
// Time: O(n); Space: O(log n) besides the arena.
func buildArena[T any, S constraints.Unsigned](sorted []T) (root S, ns []node[T, S]) {
	n := len(sorted)
	ns = make([]node[T, S], n+1)
	for i, v := range sorted {
		ns[i+1].v = v
	}
	if n == 0 {
		return
	}
	type span struct{ lo, hi, mid, p int } // [lo,hi] 1 based
	st := make([]span, 0, 64)
	root = S(mid(1, n))
	st = append(st, span{1, n, int(root), 0})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		cur := &ns[top.mid]
		cur.p = S(top.p)
		cur.h = S(bits.Len(uint(top.hi - top.lo + 1)))
		if top.lo < top.mid {
			l := mid(top.lo, top.mid-1)
			cur.l = S(l)
			st = append(st, span{top.lo, top.mid - 1, l, top.mid})
		}
		if top.mid < top.hi {
			r := mid(top.mid+1, top.hi)
			cur.r = S(r)
			st = append(st, span{top.mid + 1, top.hi, r, top.mid})
		}
	}
	return
}

// mid of [lo,hi] without overflow.
func mid(lo, hi int) int {
	return lo + (hi-lo)>>1
}

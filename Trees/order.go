package Trees

import (
	"github.com/g-m-twostay/go-bst/Queues"
	"golang.org/x/exp/constraints"
	"iter"
)

// frame of the explicit stack used by walker. ready frames hold a node
// whose value is next in line, the others a subtree still to expand.
type frame[S any] struct {
	i     S
	ready bool
}

// walker is an in-order traversal driven by an explicit stack instead of
// recursion. A subtree is expanded by pushing (right, self ready, left), so
// popping yields the values in ascending order and the stack never grows
// past 2*D+1 frames.
type walker[T any, S constraints.Unsigned] struct {
	ns []node[T, S]
	st []frame[S]
}

func (u *base[T, S]) walk() walker[T, S] {
	w := walker[T, S]{ns: u.ns}
	if u.root != 0 {
		w.st = append(make([]frame[S], 0, 2*int(u.height(u.root))+1), frame[S]{u.root, false})
	}
	return w
}

// next index in ascending value order, 0 when exhausted.
func (w *walker[T, S]) next() S {
	for len(w.st) > 0 {
		f := w.st[len(w.st)-1]
		w.st = w.st[:len(w.st)-1]
		if f.i == 0 {
			continue
		}
		if f.ready {
			return f.i
		}
		n := &w.ns[f.i]
		w.st = append(w.st, frame[S]{n.r, false}, frame[S]{f.i, true}, frame[S]{n.l, false})
	}
	return 0
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *SearchTree[T, S]) InOrder() func() (T, bool) {
	w := u.walk()
	return func() (T, bool) {
		if i := w.next(); i != 0 {
			return w.ns[i].v, true
		}
		return *new(T), false
	}
}

// Ascend calls f on the values in ascending order until f returns false.
// Time: O(n); Space: O(D)
func (u *SearchTree[T, S]) Ascend(f func(T) bool) {
	for w := u.walk(); ; {
		i := w.next()
		if i == 0 || !f(w.ns[i].v) {
			return
		}
	}
}

// All values in ascending order, for use with range.
func (u *SearchTree[T, S]) All() iter.Seq[T] {
	return u.Ascend
}

// KthSmallest [Tree.KthSmallest]
// Returns (x,true) if 1<=k<=Size(), otherwise (zero,false).
// Time: O(D+k); Space: O(D)
func (u *SearchTree[T, S]) KthSmallest(k uint) (T, bool) {
	if k == 0 || k > u.Size() {
		return *new(T), false
	}
	for w := u.walk(); ; k-- {
		i := w.next()
		if i == 0 {
			return *new(T), false
		} else if k == 1 {
			return w.ns[i].v, true
		}
	}
}

// CountNodes counts the nodes reachable from the root, as opposed to Size
// which returns the bookkept count.
// Time: O(n); Space: O(D)
func (u *SearchTree[T, S]) CountNodes() uint {
	var c uint
	for w := u.walk(); w.next() != 0; {
		c++
	}
	return c
}

// Successor [Tree.Successor]. Returns false if v isn't in the tree or is the
// maximum. The closest ancestor whose left subtree holds v is remembered on
// the way down, and is the answer when v has no right subtree.
// Time: O(D); Space: O(1)
func (u *SearchTree[T, S]) Successor(v T) (T, bool) {
	var p S
	for cur := u.root; cur != 0; {
		if c := u.cmp(v, u.ns[cur].v); c < 0 {
			p = cur
			cur = u.ns[cur].l
		} else if c > 0 {
			cur = u.ns[cur].r
		} else {
			if r := u.ns[cur].r; r != 0 {
				for p = r; u.ns[p].l != 0; p = u.ns[p].l {
				}
			}
			return u.ns[p].v, p != 0
		}
	}
	return *new(T), false
}

// Predecessor [Tree.Predecessor]. Returns false if v isn't in the tree or is
// the minimum.
// Time: O(D); Space: O(1)
func (u *SearchTree[T, S]) Predecessor(v T) (T, bool) {
	var p S
	for cur := u.root; cur != 0; {
		if c := u.cmp(v, u.ns[cur].v); c < 0 {
			cur = u.ns[cur].l
		} else if c > 0 {
			p = cur
			cur = u.ns[cur].r
		} else {
			if l := u.ns[cur].l; l != 0 {
				for p = l; u.ns[p].r != 0; p = u.ns[p].r {
				}
			}
			return u.ns[p].v, p != 0
		}
	}
	return *new(T), false
}

// Levels returns the values of the tree level by level starting from the
// root, each level from left to right.
// Time: O(n); Space: O(n)
func (u *SearchTree[T, S]) Levels() [][]T {
	if u.root == 0 {
		return nil
	}
	lvs := make([][]T, 0, u.Height())
	q := Queues.MakeArrayQueue[S](uint(u.sz)/2 + 1)
	q.Push(u.root)
	for !q.Empty() {
		lv := make([]T, 0, q.Size())
		for range q.Size() {
			i, _ := q.Pop()
			n := &u.ns[i]
			lv = append(lv, n.v)
			if n.l != 0 {
				q.Push(n.l)
			}
			if n.r != 0 {
				q.Push(n.r)
			}
		}
		lvs = append(lvs, lv)
	}
	return lvs
}

package Trees

// Verify checks every property a SearchTree maintains and returns a
// CorruptError describing the first one found broken, or nil.
// The balance property is only checked for AVL trees.
// Time: O(n); Space: O(D)
func (u *SearchTree[T, S]) Verify() error {
	if u.root != 0 && u.ns[u.root].p != 0 {
		return &CorruptError{ParentViolation, u.ns[u.root].v}
	}
	var (
		prev S
		seen S
	)
	for w := u.walk(); ; {
		i := w.next()
		if i == 0 {
			break
		}
		n := &u.ns[i]
		if prev != 0 && u.cmp(u.ns[prev].v, n.v) >= 0 {
			return &CorruptError{OrderViolation, n.v}
		}
		if n.l != 0 && (u.ns[n.l].p != i || u.cmp(u.ns[n.l].v, n.v) >= 0) ||
			n.r != 0 && (u.ns[n.r].p != i || u.cmp(u.ns[n.r].v, n.v) <= 0) {
			return &CorruptError{ParentViolation, n.v}
		}
		if n.h != max(u.ns[n.l].h, u.ns[n.r].h)+1 {
			return &CorruptError{HeightViolation, n.v}
		}
		if bf := u.balance(i); u.policy == AVL && (bf > 1 || bf < -1) {
			return &CorruptError{BalanceViolation, n.v}
		}
		prev = i
		seen++
		if seen > u.sz {
			return &CorruptError{SizeViolation, nil}
		}
	}
	if seen != u.sz {
		return &CorruptError{SizeViolation, nil}
	}
	free := 0
	for i := u.free; i != 0; i = u.ns[i].l {
		if free++; free >= len(u.ns) {
			return &CorruptError{SizeViolation, nil}
		}
	}
	if int(seen)+free != len(u.ns)-1 {
		return &CorruptError{SizeViolation, nil}
	}
	return nil
}

// Corrupt [Tree.Corrupt]
func (u *SearchTree[T, S]) Corrupt() bool {
	return u.Verify() != nil
}

// check the tree after a mutation when built with the bstdebug tag. A
// broken tree at this point is a bug in this package, so it panics.
func (u *SearchTree[T, S]) check() {
	if debug {
		if err := u.Verify(); err != nil {
			panic(err)
		}
	}
}

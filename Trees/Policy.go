package Trees

import (
	"fmt"
	"strings"
)

// Policy selects whether a SearchTree rebalances after mutations.
// It implements the flag.Value and pflag.Value interfaces.
type Policy uint8

const (
	// Unbalanced trees are plain binary search trees. The height is O(n) in
	// the worst case, for example on strictly increasing insertions.
	Unbalanced Policy = iota
	// AVL trees keep |h(l)-h(r)|<=1 at every node by rotating after each
	// insertion and removal. The height is at most 1.44*log2(n+2).
	AVL
)

func (p Policy) String() string {
	switch p {
	case Unbalanced:
		return "unbalanced"
	case AVL:
		return "avl"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// Set parses s, case insensitive.
func (p *Policy) Set(s string) error {
	switch strings.ToLower(s) {
	case "unbalanced", "bst", "plain":
		*p = Unbalanced
	case "avl":
		*p = AVL
	default:
		return fmt.Errorf("unknown policy %q, want unbalanced or avl", s)
	}
	return nil
}

// Type for pflag.
func (p *Policy) Type() string {
	return "policy"
}

// retrace walks from i up to the root recomputing heights. Under AVL every
// node on the way is rebalanced. It stops at the first subtree whose height
// is the same as before the mutation, since nothing above it can have
// changed height or balance.
// Time: O(D); Space: O(1)
func (u *SearchTree[T, S]) retrace(i S) {
	for i != 0 {
		old := u.ns[i].h
		u.fixHeight(i)
		if u.policy == AVL {
			i = u.rebalance(i)
		}
		if u.ns[i].h == old {
			return
		}
		i = u.ns[i].p
	}
}

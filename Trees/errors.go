package Trees

import "fmt"

// InvalidSliceError is returned by From when the input isn't strictly
// ascending. Prev=sorted[Index-1] and Next=sorted[Index].
type InvalidSliceError struct {
	Index      int
	Prev, Next any
}

func (e *InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at index %d: %v, %v", e.Index, e.Prev, e.Next)
}

// CapacityError means the index type of a tree can't address any more nodes.
type CapacityError struct {
	Max uint64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("tree is full: index type holds at most %d nodes", e.Max)
}

// Violation names a property of a tree.
type Violation uint8

const (
	// OrderViolation: an in-order neighbour pair isn't strictly ascending, or
	// a child is on the wrong side of its parent.
	OrderViolation Violation = iota + 1
	// ParentViolation: a parent link doesn't point back at the owning node.
	ParentViolation
	// HeightViolation: a stored height doesn't match the subtree.
	HeightViolation
	// BalanceViolation: |h(l)-h(r)|>1 in an AVL tree.
	BalanceViolation
	// SizeViolation: the node count, the free list and the arena disagree.
	SizeViolation
)

func (v Violation) String() string {
	switch v {
	case OrderViolation:
		return "order"
	case ParentViolation:
		return "parent"
	case HeightViolation:
		return "height"
	case BalanceViolation:
		return "balance"
	case SizeViolation:
		return "size"
	}
	return fmt.Sprintf("Violation(%d)", uint8(v))
}

// CorruptError is the first broken property Verify found. Value is the
// value of the node it was found at, nil for SizeViolation.
type CorruptError struct {
	Violation Violation
	Value     any
}

func (e *CorruptError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("corrupt tree: %v violation", e.Violation)
	}
	return fmt.Sprintf("corrupt tree: %v violation at %v", e.Violation, e.Value)
}

package Trees

// Set is an ordered collection of distinct values. Receivers that return a
// bool as a second value use it to tell whether the first value is defined.
// For example, calling Minimum on an empty Set returns (x T, false), and x
// should not be used.
// Implementations other than SearchTree live in the compare package.
type Set[T any] interface {
	//Insert v. Returns false if v is already present, in which case nothing
	//changes.
	Insert(v T) bool
	//Remove v. Returns false if v isn't present, in which case nothing
	//changes.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Size of the Set.
	Size() uint
	//Minimum element.
	Minimum() (T, bool)
	//Maximum element.
	Maximum() (T, bool)
	//Successor returns the smallest element greater than v. v itself must be
	//in the Set, otherwise the result is undefined (false).
	Successor(v T) (T, bool)
	//InOrder returns a closure f acting like an iterator over the elements in
	//ascending order: val, valid=f(). val is meaningful only if valid is true.
	//Once valid is false, f is exhausted. The Set must not be modified during
	//the iteration of f.
	InOrder() func() (T, bool)
}

// Tree is a Set backed by a binary search tree.
// Methods implemented recursively should be noted, otherwise they're
// implemented iteratively.
type Tree[T any] interface {
	Set[T]
	//Predecessor returns the greatest element less than v. v must be in the
	//Tree.
	Predecessor(v T) (T, bool)
	//KthSmallest finds the k-th smallest element, 1<=k<=Size().
	KthSmallest(k uint) (T, bool)
	//Height of the tree. An empty tree has height 0, a single node 1.
	Height() uint
	//Corrupt returns whether the tree has corrupt structures, when some node
	//violates the properties of that specific implementation.
	Corrupt() bool
}

// Ordered is implemented by user-defined types that can be stored through
// NewOrdered. LessThan and Equals must describe a total order.
type Ordered[T any] interface {
	LessThan(T) bool
	Equals(T) bool
}

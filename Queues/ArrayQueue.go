package Queues

const minCap = 4

// ArrayQueue is a Queue in a circular slice that grows when full.
// The zero value is an empty queue.
type ArrayQueue[T any] struct {
	sz, head uint
	content  []T
}

func MakeArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, max(initCap, minCap))}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

// resize moves the items to the beginning of a new slice of newLen>=sz.
func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if end := u.head + u.sz; end <= uint(len(u.content)) {
		copy(nc, u.content[u.head:end])
	} else {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:end-uint(len(u.content))])
	}
	u.head, u.content = 0, nc
}

// Shrink the underlying slice to fit the items.
func (u *ArrayQueue[T]) Shrink() {
	u.resize(max(u.sz, minCap))
}

// Clear the queue, keeping its capacity.
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}

func (u *ArrayQueue[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(max(u.sz*2, minCap))
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

func (u *ArrayQueue[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return t, nil
}

func (u *ArrayQueue[T]) Peek() (T, bool) {
	if u.Empty() {
		return *new(T), false
	}
	return u.content[u.head], true
}

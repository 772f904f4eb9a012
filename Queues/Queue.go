// Package Queues holds the FIFO containers used for breadth-first walks.
package Queues

// Queue is a first in first out container.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns EmptyQueueError if there's none.
	Pop() (T, error)
	//Peek at the oldest item without removing it.
	Peek() (T, bool)
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

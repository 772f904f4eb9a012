package Queues

import (
	"errors"
	"math/rand"
	"testing"
)

var _R = rand.New(rand.NewSource(0))

var _ Queue[int] = &ArrayQueue[int]{}

func TestArrayQueue_Order(t *testing.T) {
	q := MakeArrayQueue[int](1)
	var want []int
	for i := range 1000 {
		if _R.Intn(3) == 0 && len(want) > 0 {
			v, err := q.Pop()
			if err != nil {
				t.Fatalf("pop %d: %v", i, err)
			}
			if v != want[0] {
				t.Fatalf("popped %d, want %d", v, want[0])
			}
			want = want[1:]
		} else {
			q.Push(i)
			want = append(want, i)
		}
		if q.Size() != uint(len(want)) {
			t.Fatalf("size is %d, want %d", q.Size(), len(want))
		}
		if v, ok := q.Peek(); len(want) > 0 && (!ok || v != want[0]) {
			t.Fatalf("peek is %d,%t, want %d", v, ok, want[0])
		}
	}
	q.Shrink()
	for _, w := range want {
		if v, _ := q.Pop(); v != w {
			t.Fatalf("popped %d after shrink, want %d", v, w)
		}
	}
}

func TestArrayQueue_Empty(t *testing.T) {
	var q ArrayQueue[string]
	if !q.Empty() {
		t.Errorf("zero queue isn't empty")
	}
	var e *EmptyQueueError
	if _, err := q.Pop(); !errors.As(err, &e) {
		t.Errorf("pop on empty queue returned %v", err)
	}
	if _, ok := q.Peek(); ok {
		t.Errorf("peek on empty queue succeeded")
	}
	q.Push("a")
	q.Push("b")
	q.Clear()
	if !q.Empty() || q.Size() != 0 {
		t.Errorf("queue isn't empty after Clear")
	}
	q.Push("c")
	if v, err := q.Pop(); err != nil || v != "c" {
		t.Errorf("pop after Clear returned %q, %v", v, err)
	}
}

package main

import "testing"

func TestCircularQueueEnqueueDequeue(t *testing.T) {
	q := NewCircularQueue[int](3)

	if !q.IsEmpty() {
		t.Fatal("new queue is not empty")
	}

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	if !q.IsFull() {
		t.Fatal("queue with 3 items out of 3 is not full")
	}

	if got := q.Dequeue(); got != 1 {
		t.Fatalf("Dequeue() = %d, want 1", got)
	}
	if got := q.Dequeue(); got != 2 {
		t.Fatalf("Dequeue() = %d, want 2", got)
	}
	if q.Length != 1 {
		t.Fatalf("Length = %d, want 1", q.Length)
	}
}

func TestCircularQueueOverwritesOldest(t *testing.T) {
	q := NewCircularQueue[int](3)

	for i := 1; i <= 5; i++ {
		q.Enqueue(i)
	}

	// 1 and 2 got overwritten
	if q.Length != 3 {
		t.Fatalf("Length = %d, want 3", q.Length)
	}
	if got := q.PeekFirst(); got != 3 {
		t.Fatalf("PeekFirst() = %d, want 3", got)
	}
	if got := q.PeekLast(); got != 5 {
		t.Fatalf("PeekLast() = %d, want 5", got)
	}

	want := []int{3, 4, 5}
	for i, w := range want {
		if got := q.At(i); got != w {
			t.Fatalf("At(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestCircularQueuePeekLastAfterWrap(t *testing.T) {
	q := NewCircularQueue[int](2)

	q.Enqueue(10)
	q.Enqueue(20)
	q.Dequeue()
	q.Enqueue(30)

	// End wrapped back to 0 here
	if got := q.PeekLast(); got != 30 {
		t.Fatalf("PeekLast() = %d, want 30", got)
	}
	if got := q.PeekFirst(); got != 20 {
		t.Fatalf("PeekFirst() = %d, want 20", got)
	}
}

func TestCircularQueueClear(t *testing.T) {
	q := NewCircularQueue[int](4)

	q.Enqueue(1)
	q.Enqueue(2)
	q.Clear()

	if !q.IsEmpty() {
		t.Fatal("queue is not empty after Clear")
	}

	q.Enqueue(7)
	if got := q.PeekFirst(); got != 7 {
		t.Fatalf("PeekFirst() = %d, want 7", got)
	}
}

func TestCircularQueueDequeueEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Dequeue on empty queue did not panic")
		}
	}()

	q := NewCircularQueue[int](2)
	q.Dequeue()
}

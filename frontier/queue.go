package frontier

import "gopkg.in/karalabe/cookiejar.v2/collections/queue"

// Queue is a FIFO of T in strict insertion order.
type Queue[T any] struct {
	q *queue.Queue
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{q: queue.New()}
}

// Enqueue appends item to the back.
func (q *Queue[T]) Enqueue(item T) {
	q.q.Push(item)
}

// Dequeue removes and returns the front item; ok is false when the queue is empty.
func (q *Queue[T]) Dequeue() (item T, ok bool) {
	if q.q.Empty() {
		return item, false
	}

	return q.q.Pop().(T), true
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.q.Empty()
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	return q.q.Size()
}

package queue

import "github.com/ef-ds/deque"

// Q is a typed queue over a deque. Push appends to the back like Enqueue so that a command path can be built
// innermost last; Dequeue takes from the front. All operations are O(1) except Slice which is O(n).
//
// Q is used to keep the active command path and to walk command trees breadth-first.
type Q[T any] struct {
	d *deque.Deque
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{d: deque.New()}
}

// Push adds an item to the top of the stack
func (q *Q[T]) Push(item T) {
	q.d.PushBack(item)
}

// Enqueue adds an item to the end of the queue
func (q *Q[T]) Enqueue(item T) {
	q.d.PushBack(item)
}

// Dequeue removes and returns the first item of the queue
func (q *Q[T]) Dequeue() (T, bool) {
	v, ok := q.d.PopFront()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return q.d.Len()
}

// Slice returns the items from front to back. The Q is left unchanged.
func (q *Q[T]) Slice() []T {
	n := q.d.Len()
	items := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, _ := q.d.PopFront()
		q.d.PushBack(v)
		items = append(items, v.(T))
	}

	return items
}

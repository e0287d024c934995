// Package pqueue provides a small generic min-priority queue on top of
// container/heap. Entries are ordered by a caller-supplied strict less
// function; there is no decrease-key, callers push duplicates and skip stale
// entries on pop (lazy deletion).
package pqueue

import "container/heap"

// Queue is a binary min-heap of T.
// The zero value is not usable; construct with New.
type Queue[T any] struct {
	h *items[T]
}

// New returns an empty queue ordered by less.
func New[T any](less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{h: &items[T]{less: less}}
}

// Push inserts x. O(log n).
func (q *Queue[T]) Push(x T) {
	heap.Push(q.h, x)
}

// Pop removes and returns the smallest entry. ok is false when empty.
func (q *Queue[T]) Pop() (x T, ok bool) {
	if q.h.Len() == 0 {
		return x, false
	}

	return heap.Pop(q.h).(T), true
}

// Len reports the number of queued entries, stale ones included.
func (q *Queue[T]) Len() int {
	return q.h.Len()
}

// items implements heap.Interface.
type items[T any] struct {
	data []T
	less func(a, b T) bool
}

func (h *items[T]) Len() int           { return len(h.data) }
func (h *items[T]) Less(i, j int) bool { return h.less(h.data[i], h.data[j]) }
func (h *items[T]) Swap(i, j int)      { h.data[i], h.data[j] = h.data[j], h.data[i] }

func (h *items[T]) Push(x any) {
	h.data = append(h.data, x.(T))
}

func (h *items[T]) Pop() any {
	old := h.data
	n := len(old)
	x := old[n-1]
	var zero T
	old[n-1] = zero
	h.data = old[:n-1]

	return x
}

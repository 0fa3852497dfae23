// Package queue backs the matching engine's positional backoff: consuming
// positionals tries the full remaining-positionals list first, then trims
// from the tail one action at a time until the combined arity regex matches
// (the parser's "progressively trimming from the tail" rule). That access
// pattern is exactly a stack: Push the candidates bottom-to-top in
// declaration order, Pop from the tail to shrink the window under
// consideration, and Items snapshots whatever is left to try next round.
//
// Q is a thin generic wrapper around ef-ds/deque's Deque, using its back end
// as the stack top (PushBack/PopBack) since deque predates Go generics and
// stores interface{}.
package queue

import "github.com/ef-ds/deque"

// Q is a generic stack backed by a deque.Deque.
type Q[T any] struct {
	d deque.Deque
}

// New creates an empty Q.
func New[T any]() *Q[T] {
	return &Q[T]{}
}

// Push adds an item to the top of the stack.
func (q *Q[T]) Push(item T) {
	q.d.PushBack(item)
}

// Pop removes and returns the top item, or the zero value and false if empty.
func (q *Q[T]) Pop() (T, bool) {
	v, ok := q.d.PopBack()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Len returns the number of items on the stack.
func (q *Q[T]) Len() int {
	return q.d.Len()
}

// Items returns a snapshot of the stack's contents, bottom to top. deque
// doesn't expose random access, so this drains and restores the deque
// in order.
func (q *Q[T]) Items() []T {
	n := q.d.Len()
	out := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		v, _ := q.d.PopBack()
		out[i] = v.(T)
	}
	for _, v := range out {
		q.d.PushBack(v)
	}
	return out
}

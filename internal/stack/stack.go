// Package stack provides the LIFO work list used for iterative tree walks.
package stack

import "slices"

type Stack[T any] struct {
	items []T
}

// New preallocates room for capacity items.
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{
		items: make([]T, 0, capacity),
	}
}

// Push adds items with the last one on top.
func (s *Stack[T]) Push(items ...T) {
	s.items = append(s.items, items...)
}

// PushOrdered adds items so that Pop returns them in the given order,
// keeping a walk that fans out over several children left to right.
func (s *Stack[T]) PushOrdered(items ...T) {
	start := len(s.items)
	s.items = append(s.items, items...)
	slices.Reverse(s.items[start:])
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	index := len(s.items) - 1
	item := s.items[index]
	var zero T
	s.items[index] = zero
	s.items = s.items[:index]
	return item, true
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

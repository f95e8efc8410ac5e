// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stack provides a last-in first-out stack backed by a slice.
package stack

// Stack is a last-in first-out stack.
//
// The zero value is an empty stack ready to use.  It is not safe for
// concurrent access.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds the provided value to the top of the stack.
func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes and returns the value at the top of the stack.  The boolean is
// false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	value := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return value, true
}

// Peek returns the value at the top of the stack without removing it.  The
// boolean is false when the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

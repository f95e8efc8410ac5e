// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package queue provides a first-in first-out queue backed by a singly-linked
// list along with helpers that operate on such lists.
package queue

// Node is an element of a singly-linked list.
type Node[T any] struct {
	Value T
	Next  *Node[T]
}

// Queue is a first-in first-out queue backed by a singly-linked list.  Items
// are enqueued at the tail of the list and dequeued from its head, both in
// O(1).
//
// The zero value is an empty queue ready to use.  It is not safe for
// concurrent access.
type Queue[T any] struct {
	head *Node[T]
	tail *Node[T]
	len  int
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue adds the provided value to the back of the queue.
func (q *Queue[T]) Enqueue(value T) {
	node := &Node[T]{Value: value}
	if q.tail == nil {
		q.head = node
	} else {
		q.tail.Next = node
	}
	q.tail = node
	q.len++
}

// Dequeue removes and returns the value at the front of the queue.  The
// boolean is false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	node := q.head
	q.head = node.Next
	if q.head == nil {
		q.tail = nil
	}
	node.Next = nil
	q.len--
	return node.Value, true
}

// Peek returns the value at the front of the queue without removing it.  The
// boolean is false when the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	return q.head.Value, true
}

// Len returns the number of values in the queue.
func (q *Queue[T]) Len() int {
	return q.len
}

// Head returns the first node of the list backing the queue, or nil when the
// queue is empty.  The list must not be modified while the queue is in use.
func (q *Queue[T]) Head() *Node[T] {
	return q.head
}

// RemoveAll removes every node whose value equals k from the list that starts
// at head and returns the head of the resulting list.  The list is modified in
// place.  The result is nil when head is nil or every node matched.
func RemoveAll[T comparable](head *Node[T], k T) *Node[T] {
	for head != nil && head.Value == k {
		head = head.Next
	}
	for cur := head; cur != nil && cur.Next != nil; {
		if cur.Next.Value == k {
			cur.Next = cur.Next.Next
			continue
		}
		cur = cur.Next
	}
	return head
}

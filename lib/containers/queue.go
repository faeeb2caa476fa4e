// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"git.lukeshu.com/go/typedsync"
)

type queueEntry[T any] struct {
	newer *queueEntry[T]
	Value T
}

// Queue is a FIFO queue.
//
// Values are pushed on to the "newest" end and popped off of the
// "oldest" end.  Like the LinkedList that it replaces, Queue
// maintains a Pool of entries, so a Queue that is drained and re-used
// (as in a breadth-first search that runs once per tree insertion)
// does not churn out garbage.
//
// The zero value is an empty queue, ready to use.  A Queue must not
// be copied after first use.
type Queue[T any] struct {
	oldest, newest *queueEntry[T]
	pool           typedsync.Pool[*queueEntry[T]]
}

// IsEmpty returns whether the queue is empty or not.
func (q *Queue[T]) IsEmpty() bool {
	return q.oldest == nil
}

// Push appends a value to the "newest" end of the queue.
func (q *Queue[T]) Push(val T) {
	entry, ok := q.pool.Get()
	if !ok {
		entry = new(queueEntry[T])
	}
	*entry = queueEntry[T]{
		Value: val,
	}
	if q.newest == nil {
		q.oldest = entry
	} else {
		q.newest.newer = entry
	}
	q.newest = entry
}

// Pop removes and returns the value at the "oldest" end of the queue.
// If the queue is empty, Pop returns the zero value and false.
func (q *Queue[T]) Pop() (T, bool) {
	entry := q.oldest
	if entry == nil {
		var zero T
		return zero, false
	}
	q.oldest = entry.newer
	if q.oldest == nil {
		q.newest = nil
	}

	val := entry.Value
	*entry = queueEntry[T]{} // no memory leaks
	q.pool.Put(entry)
	return val, true
}

// Reset drops every value in the queue, returning the entries to the
// pool.
func (q *Queue[T]) Reset() {
	for !q.IsEmpty() {
		_, _ = q.Pop()
	}
}

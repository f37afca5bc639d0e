// Package dll holds a generic doubly linked list with O(1) insertion and
// removal at both ends, and a FIFO queue built on top of it.
//
// A List is owned by a single goroutine. Callers that share one between
// goroutines must guard it themselves.
package dll

import (
	"fmt"
	"strings"
)

type lNode[T any] struct {
	value T
	next  *lNode[T] // owning, nil at the tail
	prev  *lNode[T] // back-reference only, nil at the head
}

// unlink drops both links and the value so a detached node pins nothing.
func (n *lNode[T]) unlink() T {
	var zero T
	value := n.value
	n.value = zero
	n.next = nil
	n.prev = nil
	return value
}

// List is a doubly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	head   *lNode[T]
	tail   *lNode[T]
	length int
}

func NewList[T any]() *List[T] {
	return &List[T]{length: 0, head: nil, tail: nil}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.length
}

func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

// PushFront inserts value before the current head.
func (l *List[T]) PushFront(value T) {
	node := &lNode[T]{value: value}
	l.length++
	if l.head == nil {
		l.head, l.tail = node, node
		return
	}

	node.next = l.head
	l.head.prev = node
	l.head = node
}

// PushBack inserts value after the current tail.
func (l *List[T]) PushBack(value T) {
	node := &lNode[T]{value: value}
	l.length++
	if l.tail == nil {
		l.head, l.tail = node, node
		return
	}

	node.prev = l.tail
	l.tail.next = node
	l.tail = node
}

// PopFront removes the head and returns its value. The second result is
// false when the list is empty.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	head := l.head
	l.head = head.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}

	l.length--
	return head.unlink(), true
}

// PopBack removes the tail and returns its value. The second result is
// false when the list is empty.
func (l *List[T]) PopBack() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}

	tail := l.tail
	l.tail = tail.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}

	l.length--
	return tail.unlink(), true
}

// Front returns the head value without removing it.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Back returns the tail value without removing it.
func (l *List[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Clear releases every node, one at a time from the front, so stack use
// stays constant whatever the length.
func (l *List[T]) Clear() {
	for l.head != nil {
		l.PopFront()
	}
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for node := l.head; node != nil; node = node.next {
		if node != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, node.value)
	}
	sb.WriteByte(']')
	return sb.String()
}

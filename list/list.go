// Package list implements a generic doubly linked list.
//
// Nodes live in an arena and link to each other by handle. The forward links
// from the head own the chain; the back-references used for reverse traversal
// are plain handles that are cleared whenever the node they point at is
// unlinked.
package list

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/mgnsk/linkedlist/internal/arena"
)

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	nodes arena.Arena[node[V]]
	head  arena.Handle
	tail  arena.Handle
	len   int
	gen   uint64 // incremented on every mutation
}

// New creates an empty list.
func New[V any](opts ...Option) *List[V] {
	o := newDefaultListOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	l := &List[V]{}
	l.nodes.Grow(o.capacity)

	return l
}

// Of creates a list holding values in order.
func Of[V any](values ...V) *List[V] {
	l := New[V](WithCapacity(len(values)))
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[V]) IsEmpty() bool {
	return l.len == 0
}

// Front returns the first value of the list.
func (l *List[V]) Front() (value V, ok bool) {
	if l.head == arena.Nil {
		return value, false
	}
	return l.node(l.head).value, true
}

// Back returns the last value of the list.
func (l *List[V]) Back() (value V, ok bool) {
	if l.tail == arena.Nil {
		return value, false
	}
	return l.node(l.tail).value, true
}

// FrontPtr returns a pointer to the first value of the list or nil.
// The pointer is valid until the list is modified.
func (l *List[V]) FrontPtr() *V {
	if l.head == arena.Nil {
		return nil
	}
	return &l.node(l.head).value
}

// BackPtr returns a pointer to the last value of the list or nil.
// The pointer is valid until the list is modified.
func (l *List[V]) BackPtr() *V {
	if l.tail == arena.Nil {
		return nil
	}
	return &l.node(l.tail).value
}

// PushBack inserts a value at the back of list l.
func (l *List[V]) PushBack(value V) {
	h := l.nodes.Alloc(node[V]{value: value, prev: l.tail})

	if l.tail != arena.Nil {
		l.node(l.tail).next = h
	} else {
		l.head = h
	}

	l.tail = h
	l.len++
	l.gen++
}

// PushFront inserts a value at the front of list l.
func (l *List[V]) PushFront(value V) {
	h := l.nodes.Alloc(node[V]{value: value, next: l.head})

	if l.head != arena.Nil {
		l.node(l.head).prev = h
	} else {
		l.tail = h
	}

	l.head = h
	l.len++
	l.gen++
}

// Push is PushBack.
func (l *List[V]) Push(value V) {
	l.PushBack(value)
}

// PopBack removes and returns the last value of the list.
func (l *List[V]) PopBack() (value V, ok bool) {
	if l.tail == arena.Nil {
		return value, false
	}

	n := l.nodes.Free(l.tail)

	l.tail = n.prev
	if l.tail != arena.Nil {
		l.node(l.tail).next = arena.Nil
	} else {
		l.head = arena.Nil
	}

	l.len--
	l.gen++

	return n.value, true
}

// PopFront removes and returns the first value of the list.
func (l *List[V]) PopFront() (value V, ok bool) {
	if l.head == arena.Nil {
		return value, false
	}

	n := l.nodes.Free(l.head)

	l.head = n.next
	if l.head != arena.Nil {
		l.node(l.head).prev = arena.Nil
	} else {
		l.tail = arena.Nil
	}

	l.len--
	l.gen++

	return n.value, true
}

// Pop is PopBack.
func (l *List[V]) Pop() (value V, ok bool) {
	return l.PopBack()
}

// Clear removes all elements from the list, front to back.
func (l *List[V]) Clear() {
	for l.len > 0 {
		l.PopFront()
	}

	l.nodes.Reset()
	l.gen++
}

// Values returns the values of the list in forward order.
func (l *List[V]) Values() []V {
	values := make([]V, 0, l.len)
	for h := l.head; h != arena.Nil; {
		n := l.node(h)
		values = append(values, n.value)
		h = n.next
	}
	return values
}

// String formats the list values in forward order.
func (l *List[V]) String() string {
	return fmt.Sprint(l.Values())
}

// Validate checks the link structure of the list and returns an assertion
// failure describing the first broken invariant.
func (l *List[V]) Validate() error {
	empty := l.len == 0
	if empty != (l.head == arena.Nil) || empty != (l.tail == arena.Nil) {
		return errors.AssertionFailedf("list: len %d with head %d and tail %d", l.len, l.head, l.tail)
	}

	if live := l.nodes.Live(); live != l.len {
		return errors.AssertionFailedf("list: %d live nodes, want %d", live, l.len)
	}

	if empty {
		return nil
	}

	if prev := l.node(l.head).prev; prev != arena.Nil {
		return errors.AssertionFailedf("list: head %d links back to %d", l.head, prev)
	}

	if next := l.node(l.tail).next; next != arena.Nil {
		return errors.AssertionFailedf("list: tail %d links forward to %d", l.tail, next)
	}

	h := l.head
	for i := 1; i < l.len; i++ {
		next := l.node(h).next
		if next == arena.Nil {
			return errors.AssertionFailedf("list: forward chain ends after %d of %d nodes", i, l.len)
		}

		if prev := l.node(next).prev; prev != h {
			return errors.AssertionFailedf("list: node %d links back to %d, want %d", next, prev, h)
		}

		h = next
	}

	if h != l.tail {
		return errors.AssertionFailedf("list: forward chain ends at %d, want tail %d", h, l.tail)
	}

	h = l.tail
	for i := 1; i < l.len; i++ {
		prev := l.node(h).prev
		if prev == arena.Nil {
			return errors.AssertionFailedf("list: backward chain ends after %d of %d nodes", i, l.len)
		}
		h = prev
	}

	if h != l.head {
		return errors.AssertionFailedf("list: backward chain ends at %d, want head %d", h, l.head)
	}

	return nil
}

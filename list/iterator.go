package list

import (
	"iter"

	"github.com/mgnsk/linkedlist/internal/arena"
)

// DoubleEnded is a finite sequence that can be consumed from both ends.
type DoubleEnded[V any] interface {
	// Next returns the next value from the front.
	Next() (V, bool)
	// NextBack returns the next value from the back.
	NextBack() (V, bool)
	// Len returns the number of values left.
	Len() int
}

// Forward returns a sequence that drives it from the front.
func Forward[V any](it DoubleEnded[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Reverse returns a sequence that drives it from the back.
func Reverse[V any](it DoubleEnded[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, ok := it.NextBack(); ok; v, ok = it.NextBack() {
			if !yield(v) {
				return
			}
		}
	}
}

// Iterator traverses a list from both ends without modifying it.
//
// The list must not be modified while the iterator is in use.
type Iterator[V any] struct {
	list        *List[V]
	front, back arena.Handle
	remaining   int
	gen         uint64
}

var _ DoubleEnded[int] = (*Iterator[int])(nil)

// Iter returns an iterator over the current values of list l.
func (l *List[V]) Iter() *Iterator[V] {
	return &Iterator[V]{
		list:      l,
		front:     l.head,
		back:      l.tail,
		remaining: l.len,
		gen:       l.gen,
	}
}

// All returns a sequence of the list values in forward order.
func (l *List[V]) All() iter.Seq[V] {
	return Forward[V](l.Iter())
}

// Backward returns a sequence of the list values in reverse order.
func (l *List[V]) Backward() iter.Seq[V] {
	return Reverse[V](l.Iter())
}

// Next returns the next value from the front.
func (it *Iterator[V]) Next() (V, bool) {
	return it.advance(&it.front, func(n *node[V]) arena.Handle {
		return n.next
	})
}

// NextBack returns the next value from the back.
func (it *Iterator[V]) NextBack() (V, bool) {
	return it.advance(&it.back, func(n *node[V]) arena.Handle {
		return n.prev
	})
}

// Len returns the number of values left.
func (it *Iterator[V]) Len() int {
	return it.remaining
}

// advance yields the node at cursor and moves cursor along the link returned by follow.
func (it *Iterator[V]) advance(cursor *arena.Handle, follow func(*node[V]) arena.Handle) (value V, ok bool) {
	if it.remaining == 0 {
		return value, false
	}

	if it.gen != it.list.gen {
		panic("list: modified during iteration")
	}

	n := it.list.node(*cursor)
	*cursor = follow(n)
	it.remaining--

	return n.value, true
}

// DrainIterator removes values from a list as it is consumed.
type DrainIterator[V any] struct {
	list *List[V]
}

var _ DoubleEnded[int] = (*DrainIterator[int])(nil)

// Drain returns an iterator that empties list l.
func (l *List[V]) Drain() *DrainIterator[V] {
	return &DrainIterator[V]{list: l}
}

// Next removes and returns the first value.
func (d *DrainIterator[V]) Next() (V, bool) {
	return d.list.PopFront()
}

// NextBack removes and returns the last value.
func (d *DrainIterator[V]) NextBack() (V, bool) {
	return d.list.PopBack()
}

// Len returns the number of values left.
func (d *DrainIterator[V]) Len() int {
	return d.list.Len()
}

// All returns a sequence that drains the list front to back.
// Stopping early leaves the remaining values in the list.
func (d *DrainIterator[V]) All() iter.Seq[V] {
	return Forward[V](d)
}

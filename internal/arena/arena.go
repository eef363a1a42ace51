// Package arena implements a growable slot store addressed by stable handles.
package arena

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Handle addresses a slot in an Arena.
type Handle uint32

// Nil is the absent handle.
const Nil Handle = 0

const maxSlots = math.MaxUint32

type slot[T any] struct {
	value T
	live  bool
}

// Arena is a store of T values addressed by handles. Freed slots are reused
// before the arena grows.
//
// The zero value is a ready to use empty arena.
type Arena[T any] struct {
	slots []slot[T]
	free  []Handle
	live  int
}

// Alloc stores v in a free slot and returns its handle.
// It panics if the handle space is exhausted.
func (a *Arena[T]) Alloc(v T) Handle {
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]

		s := &a.slots[h-1]
		s.value = v
		s.live = true
		a.live++

		return h
	}

	if uint64(len(a.slots)) >= maxSlots {
		panic(errors.AssertionFailedf("arena: out of handles (%d slots)", len(a.slots)))
	}

	a.slots = append(a.slots, slot[T]{value: v, live: true})
	a.live++

	return Handle(len(a.slots))
}

// Get returns a pointer to the value in slot h.
// The pointer is valid until the next Alloc, Free or Reset.
func (a *Arena[T]) Get(h Handle) *T {
	return &a.slot(h).value
}

// Free releases slot h and returns the value it held.
func (a *Arena[T]) Free(h Handle) T {
	s := a.slot(h)

	v := s.value

	var zero T
	s.value = zero
	s.live = false

	a.free = append(a.free, h)
	a.live--

	return v
}

// Live returns the number of allocated slots.
func (a *Arena[T]) Live() int {
	return a.live
}

// Cap returns the number of slots the arena can hold without reallocating.
func (a *Arena[T]) Cap() int {
	return cap(a.slots)
}

// Grow ensures space for another n slots without reallocating.
func (a *Arena[T]) Grow(n int) {
	if n < 0 {
		panic("arena: negative grow")
	}

	if free := cap(a.slots) - len(a.slots); n > free {
		slots := make([]slot[T], len(a.slots), len(a.slots)+n)
		copy(slots, a.slots)
		a.slots = slots
	}
}

// Reset releases every slot at once.
func (a *Arena[T]) Reset() {
	clear(a.slots)
	a.slots = a.slots[:0]
	a.free = a.free[:0]
	a.live = 0
}

func (a *Arena[T]) slot(h Handle) *slot[T] {
	if h == Nil || int(h) > len(a.slots) {
		panic(errors.AssertionFailedf("arena: invalid handle %d", h))
	}

	s := &a.slots[h-1]
	if !s.live {
		panic(errors.AssertionFailedf("arena: use of freed handle %d", h))
	}

	return s
}

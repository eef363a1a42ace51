package list

import "github.com/mgnsk/linkedlist/internal/arena"

// node is a list node. next is arena.Nil for the tail and prev is arena.Nil
// for the head.
type node[V any] struct {
	next, prev arena.Handle
	value      V
}

// node returns the node for handle h.
// The pointer is valid until the next push.
func (l *List[V]) node(h arena.Handle) *node[V] {
	return l.nodes.Get(h)
}

package list

import (
	"iter"

	"github.com/percona-lab/linklab/errors"
	"github.com/percona-lab/linklab/metrics"
)

// KindDouble is the metrics label of arena-backed lists.
const KindDouble = "double"

// nilIndex marks a missing prev or next link.
const nilIndex = -1

// DoubleNode is a node of a [Double]. Links are indices into the backing
// [Arena]; prev is a non-owning back-reference used only for traversal.
type DoubleNode[T any] struct {
	val  T
	prev int
	next int
}

// Value returns the node payload.
func (n *DoubleNode[T]) Value() T {
	return n.val
}

// Arena is a fixed-capacity pool of doubly linked nodes allocated once.
// At most one [Double] is built on an arena at a time.
type Arena[T any] struct {
	nodes []DoubleNode[T]
	inUse bool
}

// NewArena preallocates capacity nodes.
func NewArena[T any](capacity int) *Arena[T] {
	capacity = max(capacity, 0)
	metrics.AddNodesAllocated(KindDouble, capacity)

	return &Arena[T]{nodes: make([]DoubleNode[T], capacity)}
}

// Cap returns the arena capacity.
func (a *Arena[T]) Cap() int {
	return len(a.nodes)
}

// Build assigns values[i] to node i and links the nodes in order.
// It fails with [ErrCapacityMismatch] if len(values) differs from the arena
// capacity, and with [ErrArenaInUse] if the arena already backs a list.
// On failure the arena is left untouched.
func (a *Arena[T]) Build(values []T) (*Double[T], error) {
	if a.inUse {
		return nil, ErrArenaInUse
	}

	if len(values) != len(a.nodes) {
		return nil, errors.Wrapf(ErrCapacityMismatch,
			"%d values for %d nodes", len(values), len(a.nodes))
	}

	last := len(a.nodes) - 1
	for i, v := range values {
		n := &a.nodes[i]
		n.val = v
		n.prev = i - 1
		n.next = i + 1

		if i == last {
			n.next = nilIndex
		}
	}

	a.inUse = true

	l := &Double[T]{arena: a, head: nilIndex, tail: nilIndex}
	if last >= 0 {
		l.head = 0
		l.tail = last
	}

	return l, nil
}

// Double is a doubly linked list over an [Arena].
type Double[T any] struct {
	arena *Arena[T]
	head  int
	tail  int
}

// Len walks the list and returns the number of nodes.
func (l *Double[T]) Len() int {
	count := 0
	for range l.indices() {
		count++
	}

	return count
}

// All returns an iterator over the values from head to tail.
func (l *Double[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range l.indices() {
			if !yield(l.arena.nodes[i].val) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values from tail to head.
func (l *Double[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.tail; i != nilIndex; i = l.arena.nodes[i].prev {
			if !yield(l.arena.nodes[i].val) {
				return
			}
		}
	}
}

// Nodes returns an iterator over the nodes from head to tail.
func (l *Double[T]) Nodes() iter.Seq[*DoubleNode[T]] {
	return func(yield func(*DoubleNode[T]) bool) {
		for i := range l.indices() {
			if !yield(&l.arena.nodes[i]) {
				return
			}
		}
	}
}

// Release clears every node and returns the arena to its unused state so
// another list can be built on it. It returns the number of nodes released.
// The list is empty afterwards.
func (l *Double[T]) Release() int {
	if l.arena == nil {
		return 0
	}

	var zero T

	released := 0
	for i := l.head; i != nilIndex; {
		n := &l.arena.nodes[i]
		next := n.next
		n.val = zero
		n.prev = nilIndex
		n.next = nilIndex
		released++
		i = next
	}

	l.arena.inUse = false
	l.arena = nil
	l.head = nilIndex
	l.tail = nilIndex

	metrics.AddNodesReleased(KindDouble, released)

	return released
}

func (l *Double[T]) indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := l.head; i != nilIndex; i = l.arena.nodes[i].next {
			if !yield(i) {
				return
			}
		}
	}
}

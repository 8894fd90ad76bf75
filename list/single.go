package list

import (
	"iter"

	"github.com/dustin/go-humanize"

	"github.com/percona-lab/linklab/log"
	"github.com/percona-lab/linklab/metrics"
)

// KindSingle is the default metrics and log label of a [Single].
const KindSingle = "single"

// Single is a singly linked list. Each node is owned by its predecessor, the
// head by the list. The tail pointer is a non-owning cache for [Single.Append].
//
// A Single must be released with [Single.Release] when the caller is done
// with it. Nodes yielded by [Single.Nodes] must not be retained past Release.
type Single[T any] struct {
	head *SingleNode[T]
	tail *SingleNode[T]

	budget *Budget
	kind   string
}

// SingleNode is a node of a [Single].
type SingleNode[T any] struct {
	val  T
	next *SingleNode[T]
}

// Value returns the node payload.
func (n *SingleNode[T]) Value() T {
	return n.val
}

type options struct {
	budget *Budget
	kind   string
}

// Option configures a [Single].
type Option func(*options)

// WithBudget charges every node of the list to b.
func WithBudget(b *Budget) Option {
	return func(o *options) {
		o.budget = b
	}
}

// WithKind sets the label used for the list in logs and metrics.
func WithKind(kind string) Option {
	return func(o *options) {
		o.kind = kind
	}
}

// NewSingle returns an empty list.
func NewSingle[T any](opts ...Option) *Single[T] {
	o := options{kind: KindSingle}
	for _, opt := range opts {
		opt(&o)
	}

	return &Single[T]{budget: o.budget, kind: o.kind}
}

// Prepend adds v as the new head of the list. It returns false if no node
// could be allocated; the list is left unchanged in that case.
func (l *Single[T]) Prepend(v T) bool {
	n := l.alloc(v)
	if n == nil {
		return false
	}

	n.next = l.head
	l.head = n

	if l.tail == nil {
		l.tail = n
	}

	return true
}

// Append adds v as the new tail of the list. It returns false if no node
// could be allocated; the list is left unchanged in that case.
func (l *Single[T]) Append(v T) bool {
	n := l.alloc(v)
	if n == nil {
		return false
	}

	if l.head == nil {
		l.head = n
		l.tail = n

		return true
	}

	l.tail.next = n
	l.tail = n

	return true
}

// Len walks the list and returns the number of nodes.
func (l *Single[T]) Len() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}

	return count
}

// IsEmpty checks if the list is empty.
func (l *Single[T]) IsEmpty() bool {
	return l.head == nil
}

// All returns an iterator over the values from head to tail.
func (l *Single[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Nodes returns an iterator over the nodes from head to tail. The node
// pointer identifies the node for display.
func (l *Single[T]) Nodes() iter.Seq[*SingleNode[T]] {
	return func(yield func(*SingleNode[T]) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

// Release unlinks every node in forward order and returns how many were
// released. Each payload is cleared before its node is unlinked.
// The list is empty afterwards and may be reused; releasing an empty list
// is a no-op.
func (l *Single[T]) Release() int {
	var zero T

	released := 0
	for n := l.head; n != nil; {
		next := n.next
		n.val = zero
		n.next = nil
		l.budget.release()
		released++
		n = next
	}

	l.head = nil
	l.tail = nil

	if released != 0 {
		metrics.AddNodesReleased(l.label(), released)
		log.New("list").With(log.Kind(l.label()), log.Op("release")).
			Debugf("Released %s nodes", humanize.Comma(int64(released)))
	}

	return released
}

func (l *Single[T]) alloc(v T) *SingleNode[T] {
	if !l.budget.acquire() {
		metrics.IncAllocationFailures(l.label())
		log.New("list").With(log.Kind(l.label()), log.Op("alloc")).
			Warnf("Node limit of %s reached", humanize.Comma(int64(l.budget.Limit())))

		return nil
	}

	metrics.AddNodesAllocated(l.label(), 1)

	return &SingleNode[T]{val: v}
}

func (l *Single[T]) label() string {
	if l.kind == "" {
		return KindSingle
	}

	return l.kind
}

package list

import "github.com/percona-lab/linklab/errors"

// CheckLinks verifies that the forward chain is acyclic and ends at the
// cached tail.
func (l *Single[T]) CheckLinks() error {
	if (l.head == nil) != (l.tail == nil) {
		return errors.Wrap(ErrHeadTail, "only one of head and tail is set")
	}

	slow, fast := l.head, l.head
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next

		if slow == fast {
			return ErrCycle
		}
	}

	var last *SingleNode[T]
	for n := l.head; n != nil; n = n.next {
		last = n
	}

	if last != l.tail {
		return errors.Wrap(ErrHeadTail, "tail is not the last node")
	}

	return nil
}

// CheckLinks verifies head and tail boundaries and that every next link is
// mirrored by the prev link of its target. A cycle cannot pass the prev check.
func (l *Double[T]) CheckLinks() error {
	if (l.head == nilIndex) != (l.tail == nilIndex) {
		return errors.Wrap(ErrHeadTail, "only one of head and tail is set")
	}

	if l.head == nilIndex {
		return nil
	}

	nodes := l.arena.nodes

	if !l.valid(l.head) || !l.valid(l.tail) {
		return errors.Wrapf(ErrBrokenLink, "head %d or tail %d out of range", l.head, l.tail)
	}

	if nodes[l.head].prev != nilIndex {
		return errors.Wrap(ErrHeadTail, "head has a prev link")
	}

	if nodes[l.tail].next != nilIndex {
		return errors.Wrap(ErrHeadTail, "tail has a next link")
	}

	prev := nilIndex

	for i := l.head; i != nilIndex; i = nodes[i].next {
		if !l.valid(i) {
			return errors.Wrapf(ErrBrokenLink, "node %d: next %d out of range", prev, i)
		}

		if nodes[i].prev != prev {
			return errors.Wrapf(ErrBrokenLink, "node %d: prev is %d, want %d", i, nodes[i].prev, prev)
		}

		prev = i
	}

	if prev != l.tail {
		return errors.Wrap(ErrHeadTail, "tail is not the last node")
	}

	return nil
}

func (l *Double[T]) valid(i int) bool {
	return i >= 0 && i < len(l.arena.nodes)
}

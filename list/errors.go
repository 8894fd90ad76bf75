package list

import "github.com/percona-lab/linklab/errors"

var (
	// ErrCapacityMismatch is returned when the number of values passed to
	// [Arena.Build] differs from the arena capacity.
	ErrCapacityMismatch = errors.New("value count does not match arena capacity")
	// ErrArenaInUse is returned when an arena already backs a list.
	ErrArenaInUse = errors.New("arena already backs a list")

	ErrCycle      = errors.New("cycle in forward links")
	ErrBrokenLink = errors.New("asymmetric prev/next links")
	ErrHeadTail   = errors.New("inconsistent head or tail")
)

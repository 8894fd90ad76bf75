package config

// Size units.
const (
	KiB = 1 << 10
	MiB = 1 << 20
)

// ArenaCapacity is the number of nodes preallocated for the doubly linked
// traversal exercise.
const ArenaCapacity = 5

// MaxDocumentSize is the largest record document accepted by the records
// command.
const MaxDocumentSize = 16 * MiB

// MetricNamespace prefixes every exported metric name.
const MetricNamespace = "linklab"

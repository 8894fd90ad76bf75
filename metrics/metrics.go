package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/percona-lab/linklab/config"
	"github.com/percona-lab/linklab/errors"
)

const kindLabel = "kind"

// Counters.
var (
	//nolint:gochecknoglobals
	nodesAllocatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "nodes_allocated_total",
		Help:      "Total number of list nodes allocated.",
		Namespace: config.MetricNamespace,
	}, []string{kindLabel})

	//nolint:gochecknoglobals
	nodesReleasedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "nodes_released_total",
		Help:      "Total number of list nodes released by teardown.",
		Namespace: config.MetricNamespace,
	}, []string{kindLabel})

	//nolint:gochecknoglobals
	allocationFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "allocation_failures_total",
		Help:      "Total number of insertions dropped because no node could be allocated.",
		Namespace: config.MetricNamespace,
	}, []string{kindLabel})

	//nolint:gochecknoglobals
	recordsIngestedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "records_ingested_total",
		Help:      "Total number of records appended to a record list.",
		Namespace: config.MetricNamespace,
	})

	//nolint:gochecknoglobals
	ingestFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "ingest_failures_total",
		Help:      "Total number of record ingestions aborted by a source failure.",
		Namespace: config.MetricNamespace,
	})
)

// Init registers the metrics.
func Init(reg prometheus.Registerer) {
	reg.MustRegister(collectors.NewGoCollector())

	reg.MustRegister(
		nodesAllocatedTotal,
		nodesReleasedTotal,
		allocationFailuresTotal,
		recordsIngestedTotal,
		ingestFailuresTotal,
	)
}

// WriteTextfile writes the gathered metrics to path in the Prometheus text
// exposition format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	err := prometheus.WriteToTextfile(path, g)

	return errors.Wrap(err, "write metrics textfile")
}

// AddNodesAllocated increments the allocated nodes counter for the list kind.
func AddNodesAllocated(kind string, v int) {
	nodesAllocatedTotal.WithLabelValues(kind).Add(float64(v))
}

// AddNodesReleased increments the released nodes counter for the list kind.
func AddNodesReleased(kind string, v int) {
	nodesReleasedTotal.WithLabelValues(kind).Add(float64(v))
}

// IncAllocationFailures increments the allocation failures counter for the list kind.
func IncAllocationFailures(kind string) {
	allocationFailuresTotal.WithLabelValues(kind).Inc()
}

// AddRecordsIngested increments the ingested records counter.
func AddRecordsIngested(v int) {
	recordsIngestedTotal.Add(float64(v))
}

// IncIngestFailures increments the failed ingestions counter.
func IncIngestFailures() {
	ingestFailuresTotal.Inc()
}

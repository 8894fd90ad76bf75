package metrics //nolint:testpackage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	allocated := testutil.ToFloat64(nodesAllocatedTotal.WithLabelValues("metrics-test"))
	released := testutil.ToFloat64(nodesReleasedTotal.WithLabelValues("metrics-test"))
	failures := testutil.ToFloat64(allocationFailuresTotal.WithLabelValues("metrics-test"))
	ingested := testutil.ToFloat64(recordsIngestedTotal)
	ingestFailures := testutil.ToFloat64(ingestFailuresTotal)

	AddNodesAllocated("metrics-test", 3)
	AddNodesReleased("metrics-test", 2)
	IncAllocationFailures("metrics-test")
	AddRecordsIngested(4)
	IncIngestFailures()

	assert.InDelta(t, allocated+3, testutil.ToFloat64(nodesAllocatedTotal.WithLabelValues("metrics-test")), 0)
	assert.InDelta(t, released+2, testutil.ToFloat64(nodesReleasedTotal.WithLabelValues("metrics-test")), 0)
	assert.InDelta(t, failures+1, testutil.ToFloat64(allocationFailuresTotal.WithLabelValues("metrics-test")), 0)
	assert.InDelta(t, ingested+4, testutil.ToFloat64(recordsIngestedTotal), 0)
	assert.InDelta(t, ingestFailures+1, testutil.ToFloat64(ingestFailuresTotal), 0)
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	Init(reg)

	AddNodesAllocated("textfile-test", 1)

	path := filepath.Join(t.TempDir(), "linklab.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `linklab_nodes_allocated_total{kind="textfile-test"} 1`)
	assert.Contains(t, string(data), "linklab_records_ingested_total")
}

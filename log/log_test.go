package log //nolint:testpackage

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percona-lab/linklab/errors"
)

func TestCtxWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := newLogger(&buf, zerolog.DebugLevel, true, true).WithContext(context.Background())

	Ctx(ctx).With(Scope("slist"), Kind("single"), Op("release")).Debugf("released %d nodes", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "slist", line["s"])
	assert.Equal(t, "single", line["kind"])
	assert.Equal(t, "release", line["op"])
	assert.Equal(t, "released 3 nodes", line["message"])
	assert.Contains(t, line, "time")
}

func TestLevelFilter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := newLogger(&buf, zerolog.WarnLevel, true, true).WithContext(context.Background())
	lg := Ctx(ctx)

	lg.Info("dropped")
	assert.Zero(t, buf.Len())

	lg.Error(errors.New("boom"), "kept")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "kept", line["message"])
}

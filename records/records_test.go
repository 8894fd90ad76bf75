package records_test

import (
	"bytes"
	"context"
	"io"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percona-lab/linklab/errors"
	"github.com/percona-lab/linklab/records"
)

// sliceSource yields recs, then fails with err if set, otherwise io.EOF.
type sliceSource struct {
	recs  []records.Record
	err   error
	pulls int
}

func (s *sliceSource) Next() (records.Record, error) {
	s.pulls++

	if len(s.recs) == 0 {
		if s.err != nil {
			return records.Record{}, s.err
		}

		return records.Record{}, io.EOF
	}

	rec := s.recs[0]
	s.recs = s.recs[1:]

	return rec, nil
}

func TestIngest(t *testing.T) {
	t.Parallel()

	t.Run("preserves source order", func(t *testing.T) {
		t.Parallel()

		src := &sliceSource{recs: []records.Record{{Name: "Ann", Age: 30}, {Name: "Bo", Age: 25}}}

		l, err := records.Ingest(context.Background(), src)
		require.NoError(t, err)
		defer l.Release()

		assert.Equal(t, 2, l.Len())
		assert.Equal(t, []records.Record{{Name: "Ann", Age: 30}, {Name: "Bo", Age: 25}}, slices.Collect(l.All()))
		assert.Equal(t, 3, src.pulls)
		assert.NoError(t, l.CheckLinks())
	})

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()

		l, err := records.Ingest(context.Background(), &sliceSource{})
		require.NoError(t, err)

		assert.True(t, l.IsEmpty())
	})

	t.Run("source failure discards partial list", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("unexpected token")
		src := &sliceSource{recs: []records.Record{{Name: "Ann", Age: 30}}, err: cause}

		l, err := records.Ingest(context.Background(), src)
		require.ErrorIs(t, err, records.ErrMalformed)
		require.ErrorIs(t, err, cause)
		assert.Nil(t, l)
		assert.Equal(t, 2, src.pulls)
	})

	t.Run("truncated json source", func(t *testing.T) {
		t.Parallel()

		for _, doc := range []string{``, `[{"name": "Ann", "age": 30}`} {
			l, err := records.Ingest(context.Background(), records.NewJSONSource(bytes.NewBufferString(doc)))
			require.ErrorIs(t, err, records.ErrMalformed, "document %q", doc)
			assert.Nil(t, l)
		}
	})

	t.Run("malformed json source", func(t *testing.T) {
		t.Parallel()

		src := records.NewJSONSource(bytes.NewBufferString(`[{"name": "Ann", "age": 30}, {"name": 5}]`))

		l, err := records.Ingest(context.Background(), src)
		require.ErrorIs(t, err, records.ErrMalformed)
		assert.Nil(t, l)
	})
}

func TestPrint(t *testing.T) {
	t.Parallel()

	src := records.NewJSONSource(bytes.NewBufferString(`[
		{"name": "Ann", "age": 30},
		{"name": "Bo", "age": 25}
	]`))

	l, err := records.Ingest(context.Background(), src)
	require.NoError(t, err)
	defer l.Release()

	var buf bytes.Buffer
	require.NoError(t, records.Print(&buf, l))
	assert.Equal(t, "Name: Ann, Age: 30\nName: Bo, Age: 25\n", buf.String())
}

package errors_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percona-lab/linklab/errors"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil cause", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, errors.Wrap(nil, "read"))
		assert.NoError(t, errors.Wrapf(nil, "read %d", 1))
	})

	t.Run("message and chain", func(t *testing.T) {
		t.Parallel()

		err := errors.Wrapf(errors.Wrap(io.ErrUnexpectedEOF, "decode record"), "document %q", "a.json")
		require.Error(t, err)
		assert.Equal(t, `document "a.json": decode record: unexpected EOF`, err.Error())
		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	})
}

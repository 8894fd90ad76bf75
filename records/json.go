package records

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/percona-lab/linklab/config"
	"github.com/percona-lab/linklab/errors"
)

// ErrDocumentTooLarge is returned by [OpenFile] for documents larger than
// [config.MaxDocumentSize].
var ErrDocumentTooLarge = errors.New("document too large")

// JSONSource reads records from a JSON document holding a top-level array
// of {"name": string, "age": integer} objects. Records are decoded one at a
// time as Next is called.
type JSONSource struct {
	dec     *json.Decoder
	closer  io.Closer
	started bool
	count   int
	err     error
}

var _ Source = (*JSONSource)(nil)

// NewJSONSource returns a source decoding r.
func NewJSONSource(r io.Reader) *JSONSource {
	return &JSONSource{dec: json.NewDecoder(r)}
}

// OpenFile opens the document at path. The caller must Close the source.
func OpenFile(path string) (*JSONSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open document")
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()

		return nil, errors.Wrap(err, "stat document")
	}

	if fi.Size() > config.MaxDocumentSize {
		f.Close()

		return nil, errors.Wrapf(ErrDocumentTooLarge, "%s exceeds the %s limit",
			humanize.IBytes(uint64(fi.Size())), humanize.IBytes(config.MaxDocumentSize)) //nolint:gosec
	}

	s := NewJSONSource(io.LimitReader(f, config.MaxDocumentSize))
	s.closer = f

	return s, nil
}

// Next returns the next record, or [io.EOF] after the closing bracket of the
// array. Errors are sticky: once Next fails it keeps returning that error.
func (s *JSONSource) Next() (Record, error) {
	if s.err != nil {
		return Record{}, s.err
	}

	rec, err := s.next()
	if err != nil {
		s.err = err
	}

	return rec, err
}

// Close closes the underlying file, if any.
func (s *JSONSource) Close() error {
	if s.closer == nil {
		return nil
	}

	err := s.closer.Close()
	s.closer = nil

	return errors.Wrap(err, "close document")
}

func (s *JSONSource) next() (Record, error) {
	if !s.started {
		tok, err := s.dec.Token()
		if err != nil {
			return Record{}, malformedf(err, "read document start")
		}

		if d, ok := tok.(json.Delim); !ok || d != '[' {
			return Record{}, malformedf(nil, "document is not an array")
		}

		s.started = true
	}

	if !s.dec.More() {
		_, err := s.dec.Token()
		if err != nil {
			return Record{}, malformedf(err, "read document end")
		}

		_, err = s.dec.Token()
		if !errors.Is(err, io.EOF) {
			return Record{}, malformedf(err, "trailing data after array")
		}

		return Record{}, io.EOF
	}

	s.count++

	var raw struct {
		Name *string `json:"name"`
		Age  *int    `json:"age"`
	}

	err := s.dec.Decode(&raw)
	if err != nil {
		return Record{}, malformedf(err, "decode record %d", s.count)
	}

	switch {
	case raw.Name == nil:
		return Record{}, malformedf(nil, "record %d: missing name", s.count)
	case raw.Age == nil:
		return Record{}, malformedf(nil, "record %d: missing age", s.count)
	}

	return Record{Name: *raw.Name, Age: *raw.Age}, nil
}

func malformedf(cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cause == nil {
		return errors.Errorf("%w: %s", ErrMalformed, msg)
	}

	// the cause is flattened so that a truncated document never reads as io.EOF
	return errors.Errorf("%w: %s: %v", ErrMalformed, msg, cause) //nolint:errorlint
}

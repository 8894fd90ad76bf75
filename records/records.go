// Package records builds singly linked lists of name/age records pulled from
// a [Source].
//
// Ingestion appends, so a list holds its records in the order the source
// produced them.
package records

import (
	"context"
	"fmt"
	"io"

	"github.com/percona-lab/linklab/errors"
	"github.com/percona-lab/linklab/list"
	"github.com/percona-lab/linklab/log"
	"github.com/percona-lab/linklab/metrics"
)

// KindRecords labels record lists in logs and metrics.
const KindRecords = "records"

// ErrMalformed is returned when a source cannot produce the next record.
var ErrMalformed = errors.New("malformed record document")

// Record is a single name/age entry.
type Record struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Source yields records one at a time. Next returns [io.EOF] once the
// source is exhausted. Any other error means the source failed.
type Source interface {
	Next() (Record, error)
}

// List is a singly linked list of records.
type List = list.Single[Record]

// Ingest pulls records from src until it is exhausted and appends each to a
// new list. If src fails, the records gathered so far are released and the
// returned error wraps [ErrMalformed]; no list is returned in that case.
func Ingest(ctx context.Context, src Source) (*List, error) {
	lg := log.Ctx(ctx).With(log.Kind(KindRecords), log.Op("ingest"))

	l := list.NewSingle[Record](list.WithKind(KindRecords))

	for i := 1; ; i++ {
		rec, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			released := l.Release()
			metrics.IncIngestFailures()
			lg.Debugf("Discarded %d records after source failure at record %d", released, i)

			if !errors.Is(err, ErrMalformed) {
				err = errors.Errorf("%w: %w", ErrMalformed, err)
			}

			return nil, errors.Wrap(err, "ingest")
		}

		if !l.Append(rec) {
			lg.Warnf("Record %d dropped", i)

			continue
		}

		metrics.AddRecordsIngested(1)
	}

	lg.Debugf("Ingested %d records", l.Len())

	return l, nil
}

// Print writes one line per record in list order.
func Print(w io.Writer, l *List) error {
	for rec := range l.All() {
		_, err := fmt.Fprintf(w, "Name: %s, Age: %d\n", rec.Name, rec.Age)
		if err != nil {
			return errors.Wrap(err, "print record")
		}
	}

	return nil
}

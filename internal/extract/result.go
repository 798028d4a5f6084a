package extract

import (
	"fmt"
	"log/slog"

	"github.com/TongAlan/val-api/internal/logging"
)

// Record kinds used in extraction errors, logs and metrics.
const (
	KindMatch  = "match"
	KindTeam   = "team"
	KindRoster = "roster"
)

// ExtractionError reports that one item of a listing could not be turned
// into a record. Sibling items are unaffected.
type ExtractionError struct {
	Kind   string
	Index  int
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s #%d: %s", e.Kind, e.Index, e.Reason)
}

// Result carries either a record or the reason it was dropped.
type Result[T any] struct {
	Record T
	Err    error
}

func success[T any](rec T) Result[T] {
	return Result[T]{Record: rec}
}

func failure[T any](kind string, index int, reason string) Result[T] {
	return Result[T]{Err: &ExtractionError{Kind: kind, Index: index, Reason: reason}}
}

// Split separates successful records from failures, keeping order.
func Split[T any](results []Result[T]) ([]T, []error) {
	records := make([]T, 0, len(results))
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		records = append(records, r.Record)
	}
	return records, errs
}

// ErrorRecorder counts dropped items.
type ErrorRecorder interface {
	RecordExtractionErrors(kind string, n int)
}

// Collect returns the successful records and reports each failure.
func Collect[T any](kind string, results []Result[T], logger *slog.Logger, recorder ErrorRecorder) []T {
	records, errs := Split(results)
	for _, err := range errs {
		logging.Warn(logger, "dropped item", logging.FieldKind, kind, "error", err)
	}
	if len(errs) > 0 && recorder != nil {
		recorder.RecordExtractionErrors(kind, len(errs))
	}
	return records
}

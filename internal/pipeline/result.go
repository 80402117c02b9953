package pipeline

import (
	"fmt"
	"time"
)

// BatchResult tracks counts and errors from a batch run. Row-scoped
// normalization diagnostics land in Errors alongside request-level
// failures so nothing is silently dropped.
type BatchResult struct {
	Requested   int
	Fetched     int
	Failed      int
	Records     int
	RowsSkipped int
	Errors      []string
	Duration    time.Duration
}

// Summary returns a human-readable summary of the batch run.
func (r *BatchResult) Summary() string {
	return fmt.Sprintf(
		"requested=%d fetched=%d failed=%d records=%d rows_skipped=%d errors=%d dur=%s",
		r.Requested, r.Fetched, r.Failed,
		r.Records, r.RowsSkipped, len(r.Errors),
		r.Duration.Round(time.Millisecond),
	)
}

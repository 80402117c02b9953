package normalize

import "fmt"

// Result is the outcome of one Normalize call: the canonical records in
// source order plus diagnostics for any dropped rows. Callers always see
// either a structural error or a result whose Skipped list accounts for
// every missing row — never a silently truncated set.
type Result struct {
	RowsIn  int
	Records []Record
	Skipped []RowError
}

// Summary returns a one-line account of the normalization.
func (r *Result) Summary() string {
	return fmt.Sprintf("rows_in=%d records=%d skipped=%d",
		r.RowsIn, len(r.Records), len(r.Skipped))
}

// SkippedMessages renders the row diagnostics as strings for logging and
// API payloads.
func (r *Result) SkippedMessages() []string {
	if len(r.Skipped) == 0 {
		return nil
	}
	msgs := make([]string, len(r.Skipped))
	for i, e := range r.Skipped {
		msgs[i] = e.Error()
	}
	return msgs
}

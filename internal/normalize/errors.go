package normalize

import (
	"fmt"

	"github.com/gridironlab/gridstats/internal/schema"
)

// ShapeMismatchError reports a data row whose retained cell count does
// not match the schema. It aborts the whole call: a wrong-width table
// means the page layout shifted and every positional mapping is suspect.
type ShapeMismatchError struct {
	Category schema.Category
	Role     schema.Role
	Row      int // data row index, 0-based
	Got      int
	Want     int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s/%s: row %d has %d cells after column selection, schema expects %d",
		e.Category, e.Role, e.Row, e.Got, e.Want)
}

// NumericParseError reports a cell that failed numeric coercion. Row-scoped:
// the row is dropped and the error accumulated as a diagnostic.
type NumericParseError struct {
	Column string
	Value  string
}

func (e *NumericParseError) Error() string {
	return fmt.Sprintf("column %q: %q is not a number", e.Column, e.Value)
}

// DurationParseError reports a cell that failed MM:SS parsing. Row-scoped,
// handled like NumericParseError.
type DurationParseError struct {
	Column string
	Value  string
}

func (e *DurationParseError) Error() string {
	return fmt.Sprintf("column %q: %q is not a MM:SS duration", e.Column, e.Value)
}

// RowError ties a row-scoped parse failure to the dropped data row.
type RowError struct {
	Row    int // data row index, 0-based, after header removal
	Column string
	Err    error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d dropped: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

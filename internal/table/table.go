// Package table provides the generic intermediate table the retrieval
// layer hands to the normalizer: an ordered list of rows of string cells,
// header row first. Parsers for the two upstream formats (HTML stats
// pages, JSON feed) both produce this shape.
package table

import "fmt"

// Table is a parsed statistics table. Rows[0] is the header/label row;
// every row has the same cell count.
type Table struct {
	Rows [][]string
}

// NumRows returns the total row count, header included.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the cell count of the first row, or 0 for an empty table.
func (t *Table) NumCols() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// DataRows returns the rows after the header.
func (t *Table) DataRows() [][]string {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}

// Validate checks the table invariants: at least one data row after the
// header, and a uniform cell count across all rows.
func (t *Table) Validate() error {
	if len(t.Rows) < 2 {
		return fmt.Errorf("table has %d rows, need a header and at least one data row", len(t.Rows))
	}
	width := len(t.Rows[0])
	for i, row := range t.Rows {
		if len(row) != width {
			return fmt.Errorf("row %d has %d cells, expected %d", i, len(row), width)
		}
	}
	return nil
}

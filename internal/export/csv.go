// Package export serializes canonical records to row-oriented formats.
// Column order follows the schema registry so exports for the same
// category/role are byte-stable across runs.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/gridironlab/gridstats/internal/normalize"
	"github.com/gridironlab/gridstats/internal/schema"
)

// metaColumns are appended after the canonical columns in every export.
var metaColumns = []string{
	normalize.MetaStat,
	normalize.MetaSeason,
	normalize.MetaSeasonType,
	normalize.MetaRole,
}

// WriteCSV writes records as CSV: a header of canonical column names in
// schema order plus the four metadata columns, then one line per record.
func WriteCSV(w io.Writer, records []normalize.Record, category schema.Category, role schema.Role) error {
	names, err := schema.ColumnNames(category, role)
	if err != nil {
		return err
	}
	header := append(append([]string{}, names...), metaColumns...)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	line := make([]string, len(header))
	for i, rec := range records {
		for j, name := range header {
			line[j] = formatValue(rec[name])
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatValue renders a typed record value as its CSV cell.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

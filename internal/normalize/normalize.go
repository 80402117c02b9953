// Package normalize turns a raw positional stats table into canonical
// records. It resolves the column layout from the schema registry,
// validates shape, renames columns positionally, applies per-column
// transforms, runs a final type-inference pass, and stamps every record
// with request metadata.
//
// Structural problems (unknown category or role, a wrong-width table)
// abort the whole call. A malformed cell only drops its row: the row goes
// into the result's diagnostics and the remaining rows are returned, so
// callers can detect partial loss without losing the whole fetch.
package normalize

import (
	"strconv"

	"github.com/gridironlab/gridstats/internal/schema"
	"github.com/gridironlab/gridstats/internal/table"
)

// Metadata keys present on every canonical record.
const (
	MetaStat       = "stat"
	MetaSeason     = "season"
	MetaSeasonType = "season_type"
	MetaRole       = "role"
)

// Record maps canonical column names to typed values (string, float64 or
// int), plus the four metadata fields. Records are built once and never
// mutated after return.
type Record map[string]interface{}

// scoringPrefix and scoringSuffix bound the raw columns retained for the
// SCORING category when the page ships its two extra middle columns:
// cells [0,scoringPrefix) and [scoringSuffix,end) survive. The dropped
// pair duplicates totals already carried by the derived columns.
const (
	scoringPrefix = 5
	scoringSuffix = 7
)

// Normalize converts a raw table for the given category and role into
// canonical records. The table's first row is the header and is
// discarded after shape validation; remaining rows keep source order.
func Normalize(tbl *table.Table, category schema.Category, role schema.Role, season int, seasonType schema.SeasonType) (*Result, error) {
	specs, err := schema.Lookup(category, role)
	if err != nil {
		return nil, err
	}

	dataRows := tbl.DataRows()
	if len(dataRows) == 0 {
		return nil, &ShapeMismatchError{
			Category: category, Role: role,
			Row: 0, Got: 0, Want: len(specs),
		}
	}

	// Shape pass first: a single wrong-width row poisons the positional
	// mapping for the whole table, so fail before transforming anything.
	selected := make([][]string, len(dataRows))
	for i, row := range dataRows {
		cells := selectCells(category, row, len(specs))
		if len(cells) != len(specs) {
			return nil, &ShapeMismatchError{
				Category: category, Role: role,
				Row: i, Got: len(cells), Want: len(specs),
			}
		}
		selected[i] = cells
	}

	result := &Result{
		RowsIn:  len(dataRows),
		Records: make([]Record, 0, len(dataRows)),
	}

	for i, cells := range selected {
		rec, rowErr := transformRow(cells, specs)
		if rowErr != nil {
			rowErr.Row = i
			result.Skipped = append(result.Skipped, *rowErr)
			continue
		}
		result.Records = append(result.Records, rec)
	}

	InferColumnTypes(result.Records, specs)

	for _, rec := range result.Records {
		rec[MetaStat] = string(category)
		rec[MetaSeason] = season
		rec[MetaSeasonType] = string(seasonType)
		rec[MetaRole] = string(role)
	}

	return result, nil
}

// selectCells applies the category-specific column selection. Only
// SCORING deviates: when the raw row is wider than the schema, the two
// duplicated middle columns are cut; a row already at schema width is
// kept whole.
func selectCells(category schema.Category, cells []string, want int) []string {
	if category != schema.Scoring || len(cells) <= want {
		return cells
	}
	kept := make([]string, 0, len(cells)-2)
	kept = append(kept, cells[:scoringPrefix]...)
	kept = append(kept, cells[scoringSuffix:]...)
	return kept
}

// transformRow applies every column transform in schema order. The first
// failing cell aborts the row.
func transformRow(cells []string, specs []schema.ColumnSpec) (Record, *RowError) {
	rec := make(Record, len(specs)+4)
	for i, spec := range specs {
		raw := cells[i]
		switch spec.Transform {
		case schema.Identity:
			rec[spec.Name] = raw
		case schema.Numeric, schema.CommaNumeric:
			f, ok := parseNumeric(raw)
			if !ok {
				return nil, &RowError{Column: spec.Name, Err: &NumericParseError{Column: spec.Name, Value: raw}}
			}
			rec[spec.Name] = f
		case schema.Percentage:
			f, ok := parsePercentage(raw)
			if !ok {
				return nil, &RowError{Column: spec.Name, Err: &NumericParseError{Column: spec.Name, Value: raw}}
			}
			rec[spec.Name] = f
		case schema.DurationMMSS:
			f, ok := parseDuration(raw)
			if !ok {
				return nil, &RowError{Column: spec.Name, Err: &DurationParseError{Column: spec.Name, Value: raw}}
			}
			rec[spec.Name] = f
		default:
			rec[spec.Name] = raw
		}
	}
	return rec, nil
}

// InferColumnTypes runs the final best-effort type inference over every
// column not marked identity or duration: if all values in the column are
// integral the column is stored as int, else if all parse as numbers it
// is stored as float64, else it is left as-is. Precedence is int over
// float64 over string, and the pass is idempotent — rerunning it changes
// nothing.
func InferColumnTypes(records []Record, specs []schema.ColumnSpec) {
	for _, spec := range specs {
		if spec.Transform == schema.Identity || spec.Transform == schema.DurationMMSS {
			continue
		}
		inferColumn(records, spec.Name)
	}
}

func inferColumn(records []Record, name string) {
	allInt := true
	allFloat := true

	for _, rec := range records {
		switch v := rec[name].(type) {
		case int:
			// already integral
		case float64:
			if !isIntegral(v) {
				allInt = false
			}
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				allInt = false
				allFloat = false
			} else if !isIntegral(f) {
				allInt = false
			}
		default:
			allInt = false
			allFloat = false
		}
		if !allFloat {
			return
		}
	}

	for _, rec := range records {
		switch v := rec[name].(type) {
		case int:
			if !allInt {
				rec[name] = float64(v)
			}
		case float64:
			if allInt {
				rec[name] = int(v)
			}
		case string:
			f, _ := strconv.ParseFloat(v, 64)
			if allInt {
				rec[name] = int(f)
			} else {
				rec[name] = f
			}
		}
	}
}

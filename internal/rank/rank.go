// Package rank computes league-wide summaries over normalized records:
// per-column distribution stats and top-N leaders. It reads the typed
// record values the normalizer emits; identity columns are not rankable.
package rank

import (
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/gridironlab/gridstats/internal/normalize"
)

// Summary describes the league distribution of one canonical column.
type Summary struct {
	Column string  `json:"column"`
	Teams  int     `json:"teams"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// Leader pairs a team with its value for the ranked column.
type Leader struct {
	Team  string  `json:"team"`
	Value float64 `json:"value"`
}

// columnValues extracts the numeric values for a column across records.
// Records missing the column or holding a non-numeric value are an error:
// the normalizer guarantees uniform column types, so a miss means the
// caller named an unknown or identity column.
func columnValues(records []normalize.Record, column string) ([]float64, error) {
	values := make([]float64, 0, len(records))
	for _, rec := range records {
		v, ok := rec[column]
		if !ok {
			return nil, fmt.Errorf("column %q not present in records", column)
		}
		switch n := v.(type) {
		case float64:
			values = append(values, n)
		case int:
			values = append(values, float64(n))
		default:
			return nil, fmt.Errorf("column %q is not numeric", column)
		}
	}
	return values, nil
}

// Summarize computes the distribution summary for one column.
func Summarize(records []normalize.Record, column string) (*Summary, error) {
	values, err := columnValues(records, column)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no records to summarize")
	}

	data := stats.Float64Data(values)
	min, err := stats.Min(data)
	if err != nil {
		return nil, fmt.Errorf("min: %w", err)
	}
	max, err := stats.Max(data)
	if err != nil {
		return nil, fmt.Errorf("max: %w", err)
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return nil, fmt.Errorf("mean: %w", err)
	}
	median, err := stats.Median(data)
	if err != nil {
		return nil, fmt.Errorf("median: %w", err)
	}

	return &Summary{
		Column: column,
		Teams:  len(values),
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
	}, nil
}

// Leaders returns the top n teams by the given column, descending. Ties
// keep source (rank) order because the sort is stable.
func Leaders(records []normalize.Record, column string, n int) ([]Leader, error) {
	values, err := columnValues(records, column)
	if err != nil {
		return nil, err
	}

	leaders := make([]Leader, len(records))
	for i, rec := range records {
		team, _ := rec["team"].(string)
		leaders[i] = Leader{Team: team, Value: values[i]}
	}

	sort.SliceStable(leaders, func(i, j int) bool {
		return leaders[i].Value > leaders[j].Value
	})

	if n > 0 && n < len(leaders) {
		leaders = leaders[:n]
	}
	return leaders, nil
}

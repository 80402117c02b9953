package pipeline

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlab/gridstats/internal/schema"
	"github.com/gridironlab/gridstats/internal/scrape"
	"github.com/gridironlab/gridstats/internal/table"
)

// stubSource serves synthetic tables without any HTTP.
type stubSource struct {
	failFor map[schema.Category]bool
}

func (s *stubSource) Fetch(_ context.Context, req scrape.Request) (*table.Table, error) {
	if s.failFor[req.Category] {
		return nil, fmt.Errorf("upstream down")
	}

	specs, err := schema.Lookup(req.Category, req.Role)
	if err != nil {
		return nil, err
	}
	header := make([]string, len(specs))
	row := make([]string, len(specs))
	for i, spec := range specs {
		header[i] = spec.Name
		switch spec.Transform {
		case schema.Identity:
			row[i] = "Team A"
		case schema.Percentage:
			row[i] = "48"
		case schema.DurationMMSS:
			row[i] = "29:47"
		default:
			row[i] = "7"
		}
	}
	return &table.Table{Rows: [][]string{header, row}}, nil
}

func TestRunAllCategories(t *testing.T) {
	result := Run(context.Background(), &stubSource{}, Options{
		Season:     2024,
		SeasonType: schema.RegularSeason,
		Workers:    3,
	}, nil)

	// 6 categories x 2 roles
	assert.Equal(t, 12, result.Requested)
	assert.Equal(t, 12, result.Fetched)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 12, result.Records)
	assert.Equal(t, 0, result.RowsSkipped)
	assert.Empty(t, result.Errors)
}

func TestRunPartialFailure(t *testing.T) {
	src := &stubSource{failFor: map[schema.Category]bool{schema.Scoring: true}}
	result := Run(context.Background(), src, Options{
		Season:     2024,
		SeasonType: schema.RegularSeason,
		Roles:      []schema.Role{schema.Offense},
		Workers:    2,
	}, nil)

	assert.Equal(t, 6, result.Requested)
	assert.Equal(t, 5, result.Fetched)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "SCORING")
}

func TestRunWritesCSV(t *testing.T) {
	dir := t.TempDir()
	result := Run(context.Background(), &stubSource{}, Options{
		Season:     2023,
		SeasonType: schema.Postseason,
		Categories: []schema.Category{schema.Rushing},
		Roles:      []schema.Role{schema.Offense},
		OutDir:     dir,
	}, nil)

	require.Equal(t, 1, result.Fetched)

	path := filepath.Join(dir, "rushing_offense_2023_POST.csv")
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	lines, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "rank", lines[0][0])
	assert.Equal(t, "Team A", lines[1][1])
}

func TestBatchResultSummary(t *testing.T) {
	r := &BatchResult{Requested: 12, Fetched: 11, Failed: 1, Records: 352, RowsSkipped: 2}
	s := r.Summary()
	assert.Contains(t, s, "requested=12")
	assert.Contains(t, s, "fetched=11")
	assert.Contains(t, s, "rows_skipped=2")
}

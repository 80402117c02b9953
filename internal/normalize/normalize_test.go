package normalize

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlab/gridstats/internal/schema"
	"github.com/gridironlab/gridstats/internal/table"
)

// syntheticTable builds a well-formed table for a category/role: a dummy
// header plus n data rows with plausible cells for every transform.
func syntheticTable(t *testing.T, category schema.Category, role schema.Role, n int) *table.Table {
	t.Helper()
	specs, err := schema.Lookup(category, role)
	require.NoError(t, err)

	header := make([]string, len(specs))
	for i := range specs {
		header[i] = fmt.Sprintf("COL%d", i)
	}
	rows := [][]string{header}

	for r := 0; r < n; r++ {
		row := make([]string, len(specs))
		for i, spec := range specs {
			switch spec.Transform {
			case schema.Identity:
				row[i] = fmt.Sprintf("Team %d", r+1)
			case schema.Percentage:
				row[i] = "55"
			case schema.DurationMMSS:
				row[i] = "31:30"
			case schema.CommaNumeric:
				row[i] = "1,234"
			default:
				row[i] = fmt.Sprintf("%d.5", r+1)
			}
		}
		rows = append(rows, row)
	}
	return &table.Table{Rows: rows}
}

func TestNormalizeKeysMatchSchemaForEveryPair(t *testing.T) {
	for _, category := range schema.Categories {
		for _, role := range []schema.Role{schema.Offense, schema.Defense} {
			tbl := syntheticTable(t, category, role, 3)
			res, err := Normalize(tbl, category, role, 2024, schema.RegularSeason)
			require.NoError(t, err, "%s/%s", category, role)
			require.Len(t, res.Records, 3, "%s/%s", category, role)
			require.Empty(t, res.Skipped, "%s/%s", category, role)

			names, err := schema.ColumnNames(category, role)
			require.NoError(t, err)
			want := append(append([]string{}, names...),
				MetaStat, MetaSeason, MetaSeasonType, MetaRole)

			for _, rec := range res.Records {
				require.Len(t, rec, len(want), "%s/%s", category, role)
				for _, name := range want {
					assert.Contains(t, rec, name, "%s/%s", category, role)
				}
			}
		}
	}
}

func TestNormalizeMetadata(t *testing.T) {
	tbl := syntheticTable(t, schema.Rushing, schema.Defense, 1)
	res, err := Normalize(tbl, schema.Rushing, schema.Defense, 2023, schema.Postseason)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	rec := res.Records[0]
	assert.Equal(t, "RUSHING", rec[MetaStat])
	assert.Equal(t, 2023, rec[MetaSeason])
	assert.Equal(t, "POST", rec[MetaSeasonType])
	assert.Equal(t, "defense", rec[MetaRole])
}

func TestNormalizeGameStatsOffense(t *testing.T) {
	tbl := &table.Table{Rows: [][]string{
		{"Rk", "Team", "G", "Pts/G", "TotPts", "Scrm Plys", "Yds/G", "Yds/P", "1st/G",
			"3rd Md", "3rd Att", "3rd Pct", "4th Md", "4th Att", "4th Pct",
			"Pen", "Pen Yds", "ToP/G", "Fum", "FumL", "TO"},
		{"1", "Dallas Cowboys", "17", "29.9", "509", "1103", "371.6", "5.7", "22.4",
			"90", "200", "45", "10", "20", "50",
			"101", "851", "31:30", "15", "7", "12"},
	}}

	res, err := Normalize(tbl, schema.GameStats, schema.Offense, 2024, schema.RegularSeason)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	rec := res.Records[0]
	assert.Equal(t, 1, rec["rank"])
	assert.Equal(t, "Dallas Cowboys", rec["team"])
	assert.Equal(t, 17, rec["games"])
	assert.Equal(t, 29.9, rec["pts_game"])
	assert.Equal(t, 509, rec["pts_total"])
	assert.InDelta(t, 0.45, rec["third_pct"].(float64), 1e-12)
	assert.InDelta(t, 0.50, rec["fourth_pct"].(float64), 1e-12)
	assert.InDelta(t, 31.5, rec["time_of_poss"].(float64), 1e-12)
	assert.Equal(t, 12, rec["turnover_ratio"])
}

func TestNormalizeGameStatsDefenseHasNoTurnoverRatio(t *testing.T) {
	offense := syntheticTable(t, schema.GameStats, schema.Offense, 2)
	defense := syntheticTable(t, schema.GameStats, schema.Defense, 2)

	offRes, err := Normalize(offense, schema.GameStats, schema.Offense, 2024, schema.RegularSeason)
	require.NoError(t, err)
	defRes, err := Normalize(defense, schema.GameStats, schema.Defense, 2024, schema.RegularSeason)
	require.NoError(t, err)

	for _, rec := range offRes.Records {
		assert.Contains(t, rec, "turnover_ratio")
	}
	for _, rec := range defRes.Records {
		assert.NotContains(t, rec, "turnover_ratio")
	}
}

func TestNormalizeScoringEndToEnd(t *testing.T) {
	// 1 header + 2 data rows; the raw rows are already at schema width.
	tbl := &table.Table{Rows: [][]string{
		{"Rk", "Team", "G", "Pts/G", "TotPts", "RshTD", "RecTD", "PntTD", "KickTD",
			"IntTD", "FumTD", "FGTD", "XPTD", "XPM", "FGM", "Sfty", "2PT"},
		{"1", "Team A", "16", "28.5", "456", "20", "15", "2", "1", "1", "0", "0", "45", "45", "5", "1", "2"},
		{"2", "Team B", "16", "24.1", "386", "14", "18", "0", "0", "2", "1", "0", "40", "40", "8", "0", "1"},
	}}

	res, err := Normalize(tbl, schema.Scoring, schema.Offense, 2024, schema.RegularSeason)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	require.Empty(t, res.Skipped)

	rec := res.Records[0]
	assert.Equal(t, 1, rec["rank"])
	assert.Equal(t, "Team A", rec["team"])
	assert.Equal(t, 16, rec["games"])
	assert.Equal(t, 28.5, rec["pts_game"])
	assert.Equal(t, 456, rec["pts_total"])
	assert.Equal(t, 20, rec["td_rush"])
	assert.Equal(t, 2, rec["two_point_converted"])
	assert.Equal(t, "SCORING", rec[MetaStat])
	assert.Equal(t, "offense", rec[MetaRole])
}

func TestNormalizeScoringDropsDuplicatedMiddleColumns(t *testing.T) {
	// The raw page ships two extra columns after position 5 that duplicate
	// derived totals; they are cut before renaming.
	tbl := &table.Table{Rows: [][]string{
		{"Rk", "Team", "G", "Pts/G", "TotPts", "DUP1", "DUP2", "RshTD", "RecTD", "PntTD",
			"KickTD", "IntTD", "FumTD", "FGTD", "XPTD", "XPM", "FGM", "Sfty", "2PT"},
		{"1", "Team A", "16", "28.5", "456", "junk", "junk", "20", "15", "2",
			"1", "1", "0", "0", "45", "45", "5", "1", "2"},
	}}

	res, err := Normalize(tbl, schema.Scoring, schema.Offense, 2024, schema.RegularSeason)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	rec := res.Records[0]
	assert.Equal(t, 456, rec["pts_total"])
	assert.Equal(t, 20, rec["td_rush"]) // first cell after the cut pair
	assert.Equal(t, 2, rec["two_point_converted"])
}

func TestNormalizeShapeMismatch(t *testing.T) {
	tbl := &table.Table{Rows: [][]string{
		{"Rk", "Team", "G"},
		{"1", "Team A", "16"},
	}}

	res, err := Normalize(tbl, schema.Rushing, schema.Offense, 2024, schema.RegularSeason)
	require.Nil(t, res)

	var shape *ShapeMismatchError
	require.True(t, errors.As(err, &shape))
	assert.Equal(t, 3, shape.Got)
	assert.Equal(t, 17, shape.Want)
}

func TestNormalizeUnknownCategoryAndRole(t *testing.T) {
	tbl := syntheticTable(t, schema.Rushing, schema.Offense, 1)

	_, err := Normalize(tbl, schema.Category("PUNTING"), schema.Offense, 2024, schema.RegularSeason)
	var unknownCat *schema.UnknownCategoryError
	assert.True(t, errors.As(err, &unknownCat))

	_, err = Normalize(tbl, schema.Rushing, schema.Role("kicker"), 2024, schema.RegularSeason)
	var unknownRole *schema.UnknownRoleError
	assert.True(t, errors.As(err, &unknownRole))
}

func TestNormalizeDropsMalformedRows(t *testing.T) {
	tbl := syntheticTable(t, schema.GameStats, schema.Offense, 3)
	tbl.Rows[2][17] = "abc" // time_of_poss on the second data row

	res, err := Normalize(tbl, schema.GameStats, schema.Offense, 2024, schema.RegularSeason)
	require.NoError(t, err)

	assert.Equal(t, 3, res.RowsIn)
	assert.Len(t, res.Records, 2)
	require.Len(t, res.Skipped, 1)

	skip := res.Skipped[0]
	assert.Equal(t, 1, skip.Row)
	assert.Equal(t, "time_of_poss", skip.Column)
	var durErr *DurationParseError
	assert.True(t, errors.As(skip.Err, &durErr))
}

func TestNormalizeDropsNumericParseFailures(t *testing.T) {
	tbl := syntheticTable(t, schema.Scoring, schema.Offense, 2)
	tbl.Rows[1][4] = "n/a" // pts_total on the first data row

	res, err := Normalize(tbl, schema.Scoring, schema.Offense, 2024, schema.RegularSeason)
	require.NoError(t, err)

	assert.Len(t, res.Records, 1)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 0, res.Skipped[0].Row)
	var numErr *NumericParseError
	assert.True(t, errors.As(res.Skipped[0].Err, &numErr))
	assert.Equal(t, "pts_total", numErr.Column)
	assert.Equal(t, "n/a", numErr.Value)
}

func TestNormalizeEmptyTable(t *testing.T) {
	tbl := &table.Table{Rows: [][]string{{"Rk", "Team"}}}
	res, err := Normalize(tbl, schema.Rushing, schema.Offense, 2024, schema.RegularSeason)
	require.Nil(t, res)
	var shape *ShapeMismatchError
	assert.True(t, errors.As(err, &shape))
}

func TestNormalizePreservesRowOrder(t *testing.T) {
	tbl := syntheticTable(t, schema.TeamReceiving, schema.Offense, 4)
	res, err := Normalize(tbl, schema.TeamReceiving, schema.Offense, 2024, schema.RegularSeason)
	require.NoError(t, err)
	require.Len(t, res.Records, 4)

	for i, rec := range res.Records {
		assert.Equal(t, fmt.Sprintf("Team %d", i+1), rec["team"])
	}
}

func TestInferColumnTypesPrecedence(t *testing.T) {
	specs := []schema.ColumnSpec{
		{Name: "ints", Transform: schema.Numeric},
		{Name: "floats", Transform: schema.Numeric},
		{Name: "team", Transform: schema.Identity},
	}
	records := []Record{
		{"ints": 456.0, "floats": 28.5, "team": "Team A"},
		{"ints": 386.0, "floats": 24.0, "team": "Team B"},
	}

	InferColumnTypes(records, specs)

	assert.Equal(t, 456, records[0]["ints"])
	assert.Equal(t, 386, records[1]["ints"])
	assert.Equal(t, 28.5, records[0]["floats"])
	assert.Equal(t, 24.0, records[1]["floats"])
	assert.Equal(t, "Team A", records[0]["team"]) // identity untouched
}

func TestInferColumnTypesIdempotent(t *testing.T) {
	tbl := syntheticTable(t, schema.Scoring, schema.Offense, 3)
	res, err := Normalize(tbl, schema.Scoring, schema.Offense, 2024, schema.RegularSeason)
	require.NoError(t, err)

	specs, err := schema.Lookup(schema.Scoring, schema.Offense)
	require.NoError(t, err)

	before := make([]Record, len(res.Records))
	for i, rec := range res.Records {
		cp := make(Record, len(rec))
		for k, v := range rec {
			cp[k] = v
		}
		before[i] = cp
	}

	InferColumnTypes(res.Records, specs)
	assert.Equal(t, before, res.Records)
}

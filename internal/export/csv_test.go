package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlab/gridstats/internal/normalize"
	"github.com/gridironlab/gridstats/internal/schema"
)

func TestWriteCSV(t *testing.T) {
	records := []normalize.Record{
		{
			"rank": 1, "team": "Team A", "games": 16, "pts_game": 28.5, "pts_total": 456,
			"td_rush": 20, "td_rec": 15, "td_punt": 2, "td_kick": 1, "td_int": 1,
			"td_fumble": 0, "td_fg": 0, "td_extra_pt": 45, "extra_points_made": 45,
			"field_goal_made": 5, "safety": 1, "two_point_converted": 2,
			"stat": "SCORING", "season": 2024, "season_type": "REG", "role": "offense",
		},
	}

	var buf bytes.Buffer
	err := WriteCSV(&buf, records, schema.Scoring, schema.Offense)
	require.NoError(t, err)

	lines, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 2)

	header := lines[0]
	assert.Equal(t, "rank", header[0])
	assert.Equal(t, "two_point_converted", header[16])
	assert.Equal(t, []string{"stat", "season", "season_type", "role"}, header[17:])

	row := lines[1]
	assert.Equal(t, "1", row[0])
	assert.Equal(t, "Team A", row[1])
	assert.Equal(t, "28.5", row[3])
	assert.Equal(t, "456", row[4])
	assert.Equal(t, []string{"SCORING", "2024", "REG", "offense"}, row[17:])
}

func TestWriteCSVUnknownSchema(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, nil, schema.Category("PUNTING"), schema.Offense)
	assert.Error(t, err)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", formatValue(nil))
	assert.Equal(t, "Team A", formatValue("Team A"))
	assert.Equal(t, "42", formatValue(42))
	assert.Equal(t, "28.5", formatValue(28.5))
	assert.Equal(t, "31.5", formatValue(31.5))
	assert.Equal(t, "1234", formatValue(1234.0))
}

package collector

import (
	"testing"
	"time"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() domain.SensorProfile {
	return domain.SensorProfile{
		Name:            "ajlc-building",
		TimestampColumn: "TimeStamp",
		Latitude:        41.29,
		Longitude:       -82.22,
		Columns: map[string]string{
			"pm2_5_atm":   "PM2.5",
			"temperature": "Temperature",
		},
	}
}

func TestParseTable(t *testing.T) {
	table := [][]string{
		{"TimeStamp", "PM2.5", "Temperature"},
		{"2025-06-02 08:00:00", "12.5", "68"},
		{"2025-06-02 08:01:00", "13.1", "68.2"},
	}

	readings, stats, err := parseTable(testProfile(), "pm2_5_atm", table)

	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, CollectStats{Rows: 2}, stats)

	first := readings[0]
	assert.Equal(t, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), first.Timestamp)
	assert.Equal(t, 12.5, first.Value)
	assert.Equal(t, map[string]float64{"temperature": 68}, first.Fields)
	require.NotNil(t, first.Latitude)
	assert.InDelta(t, 41.29, *first.Latitude, 1e-9)
}

func TestParseTable_DropsBadRows(t *testing.T) {
	table := [][]string{
		{"TimeStamp", "PM2.5", "Temperature"},
		{"not a date", "12.5", "68"},
		{"2025-06-02 08:01:00", "n/a", "68"},
		{"2025-06-02 08:02:00", "14.0", "68"},
		{"", "15.0"},
	}

	readings, stats, err := parseTable(testProfile(), "pm2_5_atm", table)

	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, 14.0, readings[0].Value)
	assert.Equal(t, CollectStats{Rows: 4, Dropped: 3}, stats)
}

func TestParseTable_MissingSidecarColumnIsTolerated(t *testing.T) {
	table := [][]string{
		{"TimeStamp", "PM2.5"}, // no Temperature column
		{"2025-06-02 08:00:00", "12.5"},
	}

	readings, _, err := parseTable(testProfile(), "pm2_5_atm", table)

	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Nil(t, readings[0].Fields)
}

func TestParseTable_UnknownMetric(t *testing.T) {
	_, _, err := parseTable(testProfile(), "humidity", [][]string{{"TimeStamp", "PM2.5"}})
	assert.ErrorContains(t, err, "humidity")
}

func TestParseTable_MissingTimestampColumn(t *testing.T) {
	table := [][]string{
		{"Date", "PM2.5"},
		{"2025-06-02 08:00:00", "12.5"},
	}

	_, _, err := parseTable(testProfile(), "pm2_5_atm", table)

	assert.ErrorContains(t, err, "TimeStamp")
}

func TestParseTable_EmptyTable(t *testing.T) {
	readings, stats, err := parseTable(testProfile(), "pm2_5_atm", nil)

	require.NoError(t, err)
	assert.Empty(t, readings)
	assert.Equal(t, CollectStats{}, stats)
}

func TestParseTimestamp_Layouts(t *testing.T) {
	tests := []string{
		"2025-06-02 08:00:00",
		"2025-06-02T08:00:00",
		"2025/06/02 08:00:00",
		"06/02/2025 08:00:00",
		"2025-06-02T08:00:00Z",
	}
	for _, s := range tests {
		ts, err := parseTimestamp(s)
		require.NoError(t, err, s)
		assert.Equal(t, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), ts, s)
	}
}

func TestFilterSince(t *testing.T) {
	t0 := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	readings := []domain.Reading{
		{Timestamp: t0},
		{Timestamp: t0.Add(time.Hour)},
		{Timestamp: t0.Add(2 * time.Hour)},
	}

	got := FilterSince(readings, t0.Add(time.Hour))

	require.Len(t, got, 2)
	assert.Equal(t, t0.Add(time.Hour), got[0].Timestamp)
}

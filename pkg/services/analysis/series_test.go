package analysis

import (
	"testing"
	"time"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeries_SortsByTimestamp(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	readings := []domain.Reading{
		{Timestamp: t0.Add(2 * time.Hour), Value: 3},
		{Timestamp: t0, Value: 1},
		{Timestamp: t0.Add(time.Hour), Value: 2},
	}

	series := NewSeries("pm2_5_atm", readings)

	require.Len(t, series.Readings, 3)
	assert.Equal(t, []float64{1, 2, 3}, values(series.Readings))
	assert.Equal(t, "pm2_5_atm", series.Metric)
}

func TestNewSeries_DuplicateTimestampLastWins(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	readings := []domain.Reading{
		{Timestamp: t0, Value: 5},
		{Timestamp: t0.Add(time.Minute), Value: 7},
		{Timestamp: t0, Value: 9}, // later duplicate replaces the first
	}

	series := NewSeries("pm2_5_atm", readings)

	require.Len(t, series.Readings, 2)
	assert.Equal(t, 9.0, series.Readings[0].Value)
	assert.Equal(t, 7.0, series.Readings[1].Value)
}

func TestNewSeries_DoesNotMutateInput(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	readings := []domain.Reading{
		{Timestamp: t0.Add(time.Hour), Value: 2},
		{Timestamp: t0, Value: 1},
	}

	_ = NewSeries("pm2_5_atm", readings)

	assert.Equal(t, 2.0, readings[0].Value, "input slice must stay untouched")
}

func TestNewSeries_Empty(t *testing.T) {
	series := NewSeries("pm2_5_atm", nil)
	assert.True(t, series.Empty())
}

package analysis

import (
	"testing"
	"time"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlyPattern_EmptyBucketsStayMarked(t *testing.T) {
	// Two readings at 08:xx, one at 14:xx; every other hour has no data.
	readings := []domain.Reading{
		{Timestamp: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), Value: 10},
		{Timestamp: time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC), Value: 20},
		{Timestamp: time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC), Value: 50},
	}

	buckets := hourlyPattern(readings)

	require.Len(t, buckets, 24)
	assert.True(t, buckets[8].HasData)
	assert.InDelta(t, 15.0, buckets[8].Mean, 1e-9)
	assert.Equal(t, 2, buckets[8].Count)

	assert.True(t, buckets[14].HasData)
	assert.Equal(t, 1, buckets[14].Count)

	for h, b := range buckets {
		if h == 8 || h == 14 {
			continue
		}
		assert.False(t, b.HasData, "hour %d has no observations", h)
		assert.Zero(t, b.Count)
	}
}

func TestWeekdayPattern_SundayFirst(t *testing.T) {
	// 2025-06-01 is a Sunday, 2025-06-02 a Monday.
	readings := []domain.Reading{
		{Timestamp: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), Value: 5},
		{Timestamp: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), Value: 15},
	}

	buckets := weekdayPattern(readings)

	require.Len(t, buckets, 7)
	assert.Equal(t, "Sunday", buckets[0].Label)
	assert.True(t, buckets[0].HasData)
	assert.InDelta(t, 5.0, buckets[0].Mean, 1e-9)
	assert.True(t, buckets[1].HasData)
	assert.InDelta(t, 15.0, buckets[1].Mean, 1e-9)
	assert.False(t, buckets[3].HasData)
}

func TestHourlyHighlights(t *testing.T) {
	readings := []domain.Reading{
		{Timestamp: time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC), Value: 30},
		{Timestamp: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC), Value: 8},
		{Timestamp: time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC), Value: 45},
	}

	hl := hourlyHighlights(hourlyPattern(readings))

	require.Equal(t, domain.StatusOK, hl.Status)
	assert.Equal(t, 18, hl.PeakHour)
	assert.InDelta(t, 45.0, hl.PeakMean, 1e-9)
	assert.Equal(t, 12, hl.LowHour)
	assert.InDelta(t, 8.0, hl.LowMean, 1e-9)
	assert.Greater(t, hl.Variation, 0.0)
}

func TestWeekendSplit(t *testing.T) {
	t.Run("readings on both sides produce a ratio", func(t *testing.T) {
		readings := []domain.Reading{
			{Timestamp: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), Value: 20}, // Sunday
			{Timestamp: time.Date(2025, 6, 7, 9, 0, 0, 0, time.UTC), Value: 40}, // Saturday
			{Timestamp: time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC), Value: 10}, // Tuesday
		}

		split := weekendSplit(readings)

		require.Equal(t, domain.StatusOK, split.Status)
		assert.InDelta(t, 30.0, split.WeekendMean, 1e-9)
		assert.InDelta(t, 10.0, split.WeekdayMean, 1e-9)
		require.True(t, split.HasRatio)
		assert.InDelta(t, 3.0, split.Ratio, 1e-9)
	})

	t.Run("weekday-only data publishes no ratio", func(t *testing.T) {
		readings := []domain.Reading{
			{Timestamp: time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC), Value: 10},
		}

		split := weekendSplit(readings)

		require.Equal(t, domain.StatusOK, split.Status)
		assert.False(t, split.HasRatio)
	})
}

func TestAlerts(t *testing.T) {
	t0 := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	analyzer := newTestAnalyzer(t, nil) // alert 35, high 55

	t.Run("latest reading below threshold", func(t *testing.T) {
		alerts := analyzer.Alerts(seriesAt(t0, time.Minute, 60, 20))
		assert.Empty(t, alerts, "only the latest reading counts")
	})

	t.Run("moderate alert", func(t *testing.T) {
		alerts := analyzer.Alerts(seriesAt(t0, time.Minute, 10, 40))
		require.Len(t, alerts, 1)
		assert.Equal(t, domain.AlertLevelModerate, alerts[0].Level)
		assert.Equal(t, 40.0, alerts[0].Value)
	})

	t.Run("high alert", func(t *testing.T) {
		alerts := analyzer.Alerts(seriesAt(t0, time.Minute, 10, 80))
		require.Len(t, alerts, 1)
		assert.Equal(t, domain.AlertLevelHigh, alerts[0].Level)
	})

	t.Run("empty series", func(t *testing.T) {
		assert.Empty(t, analyzer.Alerts(domain.Series{}))
	})
}

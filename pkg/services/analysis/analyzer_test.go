package analysis

import (
	"testing"
	"time"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(t *testing.T, mutate func(*domain.AnalysisSettings)) *Analyzer {
	t.Helper()
	settings := domain.DefaultAnalysisSettings()
	if mutate != nil {
		mutate(&settings)
	}
	analyzer, err := NewAnalyzer(settings)
	require.NoError(t, err)
	return analyzer
}

// seriesAt builds a series with readings spaced by interval starting at t0.
func seriesAt(t0 time.Time, interval time.Duration, vals ...float64) domain.Series {
	readings := make([]domain.Reading, len(vals))
	for i, v := range vals {
		readings[i] = domain.Reading{
			Timestamp: t0.Add(time.Duration(i) * interval),
			Value:     v,
		}
	}
	return NewSeries("pm2_5_atm", readings)
}

func TestNewAnalyzer_RejectsMalformedThresholds(t *testing.T) {
	tests := []struct {
		name       string
		thresholds domain.ThresholdTable
	}{
		{
			name: "overlapping ranges",
			thresholds: domain.ThresholdTable{
				{Lower: 0, Upper: 10, Label: "A"},
				{Lower: 5, Upper: 15, Label: "B"},
			},
		},
		{
			name: "unsorted ranges",
			thresholds: domain.ThresholdTable{
				{Lower: 10, Upper: 20, Label: "B"},
				{Lower: 0, Upper: 10, Label: "A"},
			},
		},
		{
			name: "inverted bounds",
			thresholds: domain.ThresholdTable{
				{Lower: 10, Upper: 5, Label: "A"},
			},
		},
		{
			name:       "empty table",
			thresholds: domain.ThresholdTable{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := domain.DefaultAnalysisSettings()
			settings.Thresholds = tt.thresholds

			_, err := NewAnalyzer(settings)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidThresholdTable)
		})
	}
}

func TestAnalyze_EmptySeriesDegradesEveryField(t *testing.T) {
	analyzer := newTestAnalyzer(t, nil)

	report := analyzer.Analyze(domain.Series{Metric: "pm2_5_atm"})

	assert.Equal(t, domain.StatusNoData, report.Period.Status)
	assert.Equal(t, domain.StatusNoData, report.Stats.Status)
	assert.Equal(t, domain.StatusNoData, report.Trend.Status)
	assert.Equal(t, domain.StatusNoData, report.HourlyHighlights.Status)
	assert.Equal(t, domain.StatusNoData, report.WeekendSplit.Status)
	assert.Equal(t, domain.StatusNoData, report.Categories.Status)
	assert.Equal(t, domain.StatusNoData, report.Exposure.Status)
	assert.Equal(t, domain.StatusNoData, report.Quality.Status)
	assert.Empty(t, report.Events)

	require.Len(t, report.Hourly, 24)
	require.Len(t, report.Weekday, 7)
	for _, b := range report.Hourly {
		assert.False(t, b.HasData)
	}
}

// The three-point example: readings 10, 12, 9 an hour apart with bands
// {0-12 Good, 12-999 Moderate}.
func TestAnalyze_ThreePointExample(t *testing.T) {
	t0 := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	thresholds := domain.ThresholdTable{
		{Lower: 0, Upper: 12, Label: "Good"},
		{Lower: 12, Upper: 999, Label: "Moderate", Unhealthy: true},
	}

	t.Run("minimum of 3 computes the trend", func(t *testing.T) {
		analyzer := newTestAnalyzer(t, func(s *domain.AnalysisSettings) {
			s.Thresholds = thresholds
			s.MinTrendSamples = 3
		})

		report := analyzer.Analyze(seriesAt(t0, time.Hour, 10, 12, 9))

		require.Equal(t, domain.StatusOK, report.Trend.Status)
		assert.Equal(t, domain.TrendDecreasing, report.Trend.Direction)
		assert.InDelta(t, -0.5, report.Trend.Slope, 1e-9)
		assert.False(t, report.Trend.Significant, "three noisy points are not significant")

		assert.Equal(t, map[string]int{"Good": 2, "Moderate": 1}, report.Categories.Counts)
		assert.InDelta(t, 100.0/3.0, report.Categories.UnhealthyPercent, 1e-9)
	})

	t.Run("minimum of 4 degrades the trend only", func(t *testing.T) {
		analyzer := newTestAnalyzer(t, func(s *domain.AnalysisSettings) {
			s.Thresholds = thresholds
			s.MinTrendSamples = 4
		})

		report := analyzer.Analyze(seriesAt(t0, time.Hour, 10, 12, 9))

		assert.Equal(t, domain.StatusInsufficientData, report.Trend.Status)
		// The rest of the report is still computed.
		assert.Equal(t, domain.StatusOK, report.Stats.Status)
		assert.Equal(t, domain.StatusOK, report.Categories.Status)
		assert.Equal(t, domain.StatusOK, report.Quality.Status)
	})
}

func TestAnalyze_StatsAndPeriod(t *testing.T) {
	t0 := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	analyzer := newTestAnalyzer(t, nil)

	report := analyzer.Analyze(seriesAt(t0, time.Hour, 10, 12, 9, 13))

	assert.Equal(t, domain.StatusOK, report.Period.Status)
	assert.Equal(t, t0, report.Period.Start)
	assert.Equal(t, t0.Add(3*time.Hour), report.Period.End)
	assert.InDelta(t, 3.0, report.Period.Hours, 1e-9)

	assert.Equal(t, 4, report.Stats.Count)
	assert.InDelta(t, 11.0, report.Stats.Mean, 1e-9)
	assert.Equal(t, 9.0, report.Stats.Min)
	assert.Equal(t, 13.0, report.Stats.Max)
}

func TestAnalyze_ReadingOutsideAllRangesIsUnclassified(t *testing.T) {
	t0 := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	analyzer := newTestAnalyzer(t, func(s *domain.AnalysisSettings) {
		s.Thresholds = domain.ThresholdTable{
			{Lower: 0, Upper: 50, Label: "Good"},
		}
	})

	report := analyzer.Analyze(seriesAt(t0, time.Minute, 10, 600, -3))

	assert.Equal(t, 1, report.Categories.Counts["Good"])
	assert.Equal(t, 2, report.Categories.Counts[domain.UnclassifiedLabel])
}

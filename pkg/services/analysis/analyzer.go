package analysis

import (
	"fmt"
	"time"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
)

// Analyzer turns a series of sensor readings into a summary report. It is
// stateless apart from its validated settings, so one instance can serve
// any number of sequential calls.
type Analyzer struct {
	settings domain.AnalysisSettings
}

// NewAnalyzer validates the settings up front. A malformed threshold
// table is rejected here, never during analysis.
func NewAnalyzer(settings domain.AnalysisSettings) (*Analyzer, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("analysis settings: %w", err)
	}
	return &Analyzer{settings: settings}, nil
}

// Analyze produces a report for the series. An empty series yields a
// report with every field in the no-data state rather than an error.
func (a *Analyzer) Analyze(series domain.Series) domain.Report {
	report := domain.Report{
		Metric:     series.Metric,
		AnalyzedAt: time.Now().UTC(),
	}

	if series.Empty() {
		report.Period.Status = domain.StatusNoData
		report.Stats.Status = domain.StatusNoData
		report.Trend.Status = domain.StatusNoData
		report.HourlyHighlights.Status = domain.StatusNoData
		report.WeekendSplit.Status = domain.StatusNoData
		report.Categories.Status = domain.StatusNoData
		report.Exposure.Status = domain.StatusNoData
		report.Quality.Status = domain.StatusNoData
		report.Hourly = emptyHourlyBuckets()
		report.Weekday = emptyWeekdayBuckets()
		report.Events = []domain.Event{}
		return report
	}

	start, end := series.Period()
	report.Period = domain.Period{
		Status: domain.StatusOK,
		Start:  start,
		End:    end,
		Hours:  end.Sub(start).Hours(),
	}

	report.Stats = valueStats(series.Readings)
	report.Trend = a.trend(series.Readings)
	report.Hourly = hourlyPattern(series.Readings)
	report.Weekday = weekdayPattern(series.Readings)
	report.HourlyHighlights = hourlyHighlights(report.Hourly)
	report.WeekendSplit = weekendSplit(series.Readings)
	report.Events = a.DetectEvents(series)
	report.Categories = a.categories(series.Readings)
	report.Exposure = a.exposure(series.Readings)
	report.Quality = a.quality(series.Readings)
	report.Recommendations = a.recommendations(report)

	return report
}

// Settings returns a copy of the analyzer's validated settings.
func (a *Analyzer) Settings() domain.AnalysisSettings {
	return a.settings
}

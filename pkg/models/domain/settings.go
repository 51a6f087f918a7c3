package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidThresholdTable is returned when a category table is unsorted,
// overlapping, or inverted. It is raised at configuration time, before any
// series is analyzed.
var ErrInvalidThresholdTable = errors.New("invalid threshold table")

// CategoryRange maps the half-open interval [Lower, Upper) to a category
// label. Unhealthy marks bands counted toward the unhealthy-time share.
type CategoryRange struct {
	Lower     float64 `mapstructure:"lower"`
	Upper     float64 `mapstructure:"upper"`
	Label     string  `mapstructure:"label"`
	Unhealthy bool    `mapstructure:"unhealthy"`
}

// ThresholdTable is an ordered list of non-overlapping category ranges.
type ThresholdTable []CategoryRange

// Validate rejects malformed tables: empty labels, inverted bounds,
// ranges out of order, or overlapping neighbors.
func (t ThresholdTable) Validate() error {
	for i, r := range t {
		if r.Label == "" {
			return fmt.Errorf("%w: range %d has an empty label", ErrInvalidThresholdTable, i)
		}
		if r.Upper <= r.Lower {
			return fmt.Errorf("%w: range %q has upper bound %v <= lower bound %v",
				ErrInvalidThresholdTable, r.Label, r.Upper, r.Lower)
		}
		if i == 0 {
			continue
		}
		prev := t[i-1]
		if r.Lower < prev.Lower {
			return fmt.Errorf("%w: range %q is out of order after %q",
				ErrInvalidThresholdTable, r.Label, prev.Label)
		}
		if r.Lower < prev.Upper {
			return fmt.Errorf("%w: ranges %q and %q overlap",
				ErrInvalidThresholdTable, prev.Label, r.Label)
		}
	}
	return nil
}

// Classify returns the range covering v, or false when v falls outside
// every configured range.
func (t ThresholdTable) Classify(v float64) (CategoryRange, bool) {
	for _, r := range t {
		if v >= r.Lower && v < r.Upper {
			return r, true
		}
	}
	return CategoryRange{}, false
}

// AnalysisSettings is the full configuration surface of the analyzer.
type AnalysisSettings struct {
	Thresholds ThresholdTable `mapstructure:"thresholds"`

	EventThreshold   float64       `mapstructure:"event_threshold"`
	MinEventDuration time.Duration `mapstructure:"min_event_duration"`
	MergeTolerance   time.Duration `mapstructure:"merge_tolerance"`

	ExpectedInterval time.Duration `mapstructure:"expected_interval"`
	GapThreshold     time.Duration `mapstructure:"gap_threshold"`

	MinTrendSamples   int     `mapstructure:"min_trend_samples"`
	SignificanceLevel float64 `mapstructure:"significance_level"`
	// Slopes whose magnitude stays under this many units per hour are
	// reported as stable rather than trending.
	StableSlope float64 `mapstructure:"stable_slope"`

	AlertThreshold     float64 `mapstructure:"alert_threshold"`
	HighAlertThreshold float64 `mapstructure:"high_alert_threshold"`

	WHOGuideline float64 `mapstructure:"who_guideline"`
	EPAStandard  float64 `mapstructure:"epa_standard"`
}

// DefaultThresholds returns the EPA PM2.5 AQI category bands.
func DefaultThresholds() ThresholdTable {
	return ThresholdTable{
		{Lower: 0, Upper: 12, Label: "Good"},
		{Lower: 12, Upper: 35.4, Label: "Moderate"},
		{Lower: 35.4, Upper: 55.4, Label: "Unhealthy for Sensitive Groups", Unhealthy: true},
		{Lower: 55.4, Upper: 150.4, Label: "Unhealthy", Unhealthy: true},
		{Lower: 150.4, Upper: 250.4, Label: "Very Unhealthy", Unhealthy: true},
		{Lower: 250.4, Upper: 500.4, Label: "Hazardous", Unhealthy: true},
	}
}

// DefaultAnalysisSettings mirrors the sampling cadence of a Purple Air
// sensor logging once a minute.
func DefaultAnalysisSettings() AnalysisSettings {
	return AnalysisSettings{
		Thresholds:         DefaultThresholds(),
		EventThreshold:     35.4,
		MinEventDuration:   3 * time.Minute,
		MergeTolerance:     30 * time.Minute,
		ExpectedInterval:   time.Minute,
		GapThreshold:       5 * time.Minute,
		MinTrendSamples:    3,
		SignificanceLevel:  0.05,
		StableSlope:        0.001,
		AlertThreshold:     35.0,
		HighAlertThreshold: 55.0,
		WHOGuideline:       15.0,
		EPAStandard:        35.0,
	}
}

// Validate checks the whole settings surface. Threshold problems surface
// as ErrInvalidThresholdTable so callers can distinguish them.
func (s AnalysisSettings) Validate() error {
	if len(s.Thresholds) == 0 {
		return fmt.Errorf("%w: no ranges defined", ErrInvalidThresholdTable)
	}
	if err := s.Thresholds.Validate(); err != nil {
		return err
	}
	if s.ExpectedInterval <= 0 {
		return fmt.Errorf("expected_interval must be positive, got %s", s.ExpectedInterval)
	}
	if s.MinEventDuration < 0 {
		return fmt.Errorf("min_event_duration must not be negative, got %s", s.MinEventDuration)
	}
	if s.MergeTolerance < 0 {
		return fmt.Errorf("merge_tolerance must not be negative, got %s", s.MergeTolerance)
	}
	if s.GapThreshold <= 0 {
		return fmt.Errorf("gap_threshold must be positive, got %s", s.GapThreshold)
	}
	if s.MinTrendSamples < 3 {
		return fmt.Errorf("min_trend_samples must be at least 3, got %d", s.MinTrendSamples)
	}
	if s.SignificanceLevel <= 0 || s.SignificanceLevel >= 1 {
		return fmt.Errorf("significance_level must be in (0,1), got %v", s.SignificanceLevel)
	}
	return nil
}

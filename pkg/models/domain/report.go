package domain

import "time"

// FieldStatus marks a report field as computed or degraded. A degraded
// field keeps its status explicit so consumers never mistake a zero value
// for a measurement.
type FieldStatus string

const (
	StatusOK               FieldStatus = "ok"
	StatusNoData           FieldStatus = "no_data"
	StatusInsufficientData FieldStatus = "insufficient_data"
)

// TrendDirection is the sign of the fitted trend slope.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// Report is the complete analysis result for one series. It is derived,
// read-only state: recomputed on every request, never stored.
type Report struct {
	Metric           string
	AnalyzedAt       time.Time
	Period           Period
	Stats            ValueStats
	Trend            Trend
	Hourly           []PatternBucket // 24 buckets, hour of day
	Weekday          []PatternBucket // 7 buckets, Sunday first
	HourlyHighlights HourlyHighlights
	WeekendSplit     WeekendSplit
	Events           []Event
	Categories       CategoryDistribution
	Exposure         Exposure
	Quality          DataQuality
	Recommendations  []string
}

// Period is the time span covered by the analyzed series.
type Period struct {
	Status FieldStatus
	Start  time.Time
	End    time.Time
	Hours  float64
}

// ValueStats holds descriptive statistics over the series values.
type ValueStats struct {
	Status FieldStatus
	Mean   float64
	Median float64
	Std    float64
	Min    float64
	Max    float64
	Count  int
}

// Trend is the result of an ordinary least squares fit of value against
// elapsed time. Slope is expressed in value units per hour.
type Trend struct {
	Status      FieldStatus
	Direction   TrendDirection
	Slope       float64
	RSquared    float64
	PValue      float64
	Significant bool
}

// PatternBucket is one hour-of-day or day-of-week aggregate. HasData
// distinguishes an empty bucket from one that genuinely averaged to zero.
type PatternBucket struct {
	Label   string
	HasData bool
	Mean    float64
	Median  float64
	Count   int
}

// HourlyHighlights summarizes the hourly pattern: which hours run highest
// and lowest and how much the hourly means vary.
type HourlyHighlights struct {
	Status    FieldStatus
	PeakHour  int
	PeakMean  float64
	LowHour   int
	LowMean   float64
	Variation float64
}

// WeekendSplit compares weekend and weekday averages. HasRatio is false
// when either side has no observations or the weekday mean is zero.
type WeekendSplit struct {
	Status      FieldStatus
	WeekdayMean float64
	WeekendMean float64
	Ratio       float64
	HasRatio    bool
}

// Event is a contiguous span where the measurement stayed above the
// configured event threshold for at least the minimum duration.
type Event struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
	Peak     float64
	Average  float64
	Severity string
	Samples  int
}

// CategoryDistribution counts readings per threshold-table category.
// Readings outside every range are counted under UnclassifiedLabel.
type CategoryDistribution struct {
	Status           FieldStatus
	Counts           map[string]int
	UnhealthyPercent float64
}

// UnclassifiedLabel is the bucket for values outside every configured range.
const UnclassifiedLabel = "Unclassified"

// Exposure summarizes how the measurement compares against health
// guideline values.
type Exposure struct {
	Status         FieldStatus
	Average        float64
	Max            float64
	P95            float64
	WHOExceedances int
	EPAExceedances int
}

// DataQuality reports collection completeness: how many readings arrived
// versus how many the sampling interval predicts, plus gaps in coverage.
type DataQuality struct {
	Status       FieldStatus
	Readings     int
	Expected     int
	Completeness float64
	Gaps         []Gap
}

// Gap is a stretch between consecutive readings longer than the configured
// gap threshold.
type Gap struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// Alert flags the most recent reading when it exceeds the alert threshold.
type Alert struct {
	Timestamp time.Time
	Value     float64
	Level     string
	Message   string
}

const (
	AlertLevelModerate = "MODERATE"
	AlertLevelHigh     = "HIGH"
)

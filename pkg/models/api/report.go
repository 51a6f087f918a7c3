package api

import (
	"time"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
)

// Sensor is the list-endpoint shape of a configured sensor.
type Sensor struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Latitude    float64  `json:"latitude,omitempty"`
	Longitude   float64  `json:"longitude,omitempty"`
	Metrics     []string `json:"metrics"`
}

type Period struct {
	Status string     `json:"status"`
	Start  *time.Time `json:"start,omitempty"`
	End    *time.Time `json:"end,omitempty"`
	Hours  float64    `json:"hours"`
}

type ValueStats struct {
	Status string  `json:"status"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

type Trend struct {
	Status      string  `json:"status"`
	Direction   string  `json:"direction,omitempty"`
	Slope       float64 `json:"slope"`
	RSquared    float64 `json:"r_squared"`
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
}

type PatternBucket struct {
	Label   string  `json:"label"`
	HasData bool    `json:"has_data"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Count   int     `json:"count"`
}

type HourlyHighlights struct {
	Status    string  `json:"status"`
	PeakHour  int     `json:"peak_hour"`
	PeakMean  float64 `json:"peak_mean"`
	LowHour   int     `json:"low_hour"`
	LowMean   float64 `json:"low_mean"`
	Variation float64 `json:"variation"`
}

type WeekendSplit struct {
	Status      string  `json:"status"`
	WeekdayMean float64 `json:"weekday_mean"`
	WeekendMean float64 `json:"weekend_mean"`
	Ratio       float64 `json:"ratio"`
	HasRatio    bool    `json:"has_ratio"`
}

type Exposure struct {
	Status         string  `json:"status"`
	Average        float64 `json:"average"`
	Max            float64 `json:"max"`
	P95            float64 `json:"p95"`
	WHOExceedances int     `json:"who_exceedances"`
	EPAExceedances int     `json:"epa_exceedances"`
}

type Event struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration string    `json:"duration"`
	Peak     float64   `json:"peak"`
	Average  float64   `json:"average"`
	Severity string    `json:"severity"`
	Samples  int       `json:"samples"`
}

type Gap struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration string    `json:"duration"`
}

type DataQuality struct {
	Status       string  `json:"status"`
	Readings     int     `json:"readings"`
	Expected     int     `json:"expected"`
	Completeness float64 `json:"completeness"`
	Gaps         []Gap   `json:"gaps"`
}

type Categories struct {
	Status           string         `json:"status"`
	Counts           map[string]int `json:"counts,omitempty"`
	UnhealthyPercent float64        `json:"unhealthy_percent"`
}

type Alert struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
}

type Report struct {
	Metric           string           `json:"metric"`
	AnalyzedAt       time.Time        `json:"analyzed_at"`
	Period           Period           `json:"period"`
	Stats            ValueStats       `json:"stats"`
	Trend            Trend            `json:"trend"`
	Hourly           []PatternBucket  `json:"hourly"`
	Weekday          []PatternBucket  `json:"weekday"`
	HourlyHighlights HourlyHighlights `json:"hourly_highlights"`
	WeekendSplit     WeekendSplit     `json:"weekend_split"`
	Events           []Event          `json:"events"`
	Categories       Categories       `json:"categories"`
	Exposure         Exposure         `json:"exposure"`
	Quality          DataQuality      `json:"quality"`
	Recommendations  []string         `json:"recommendations"`
}

// FromDomainReport maps a domain report onto the wire shape. Durations
// are rendered as strings ("1h30m0s") to keep the payload readable.
func FromDomainReport(r *domain.Report) Report {
	out := Report{
		Metric:     r.Metric,
		AnalyzedAt: r.AnalyzedAt,
		Period: Period{
			Status: string(r.Period.Status),
			Hours:  r.Period.Hours,
		},
		Stats: ValueStats{
			Status: string(r.Stats.Status),
			Mean:   r.Stats.Mean,
			Median: r.Stats.Median,
			Std:    r.Stats.Std,
			Min:    r.Stats.Min,
			Max:    r.Stats.Max,
			Count:  r.Stats.Count,
		},
		Trend: Trend{
			Status:      string(r.Trend.Status),
			Direction:   string(r.Trend.Direction),
			Slope:       r.Trend.Slope,
			RSquared:    r.Trend.RSquared,
			PValue:      r.Trend.PValue,
			Significant: r.Trend.Significant,
		},
		Hourly:  fromBuckets(r.Hourly),
		Weekday: fromBuckets(r.Weekday),
		HourlyHighlights: HourlyHighlights{
			Status:    string(r.HourlyHighlights.Status),
			PeakHour:  r.HourlyHighlights.PeakHour,
			PeakMean:  r.HourlyHighlights.PeakMean,
			LowHour:   r.HourlyHighlights.LowHour,
			LowMean:   r.HourlyHighlights.LowMean,
			Variation: r.HourlyHighlights.Variation,
		},
		WeekendSplit: WeekendSplit{
			Status:      string(r.WeekendSplit.Status),
			WeekdayMean: r.WeekendSplit.WeekdayMean,
			WeekendMean: r.WeekendSplit.WeekendMean,
			Ratio:       r.WeekendSplit.Ratio,
			HasRatio:    r.WeekendSplit.HasRatio,
		},
		Events: FromDomainEvents(r.Events),
		Categories: Categories{
			Status:           string(r.Categories.Status),
			Counts:           r.Categories.Counts,
			UnhealthyPercent: r.Categories.UnhealthyPercent,
		},
		Exposure: Exposure{
			Status:         string(r.Exposure.Status),
			Average:        r.Exposure.Average,
			Max:            r.Exposure.Max,
			P95:            r.Exposure.P95,
			WHOExceedances: r.Exposure.WHOExceedances,
			EPAExceedances: r.Exposure.EPAExceedances,
		},
		Quality: DataQuality{
			Status:       string(r.Quality.Status),
			Readings:     r.Quality.Readings,
			Expected:     r.Quality.Expected,
			Completeness: r.Quality.Completeness,
			Gaps:         fromGaps(r.Quality.Gaps),
		},
		Recommendations: r.Recommendations,
	}

	if r.Period.Status == domain.StatusOK {
		start, end := r.Period.Start, r.Period.End
		out.Period.Start = &start
		out.Period.End = &end
	}
	return out
}

func FromDomainEvents(events []domain.Event) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		out[i] = Event{
			Start:    e.Start,
			End:      e.End,
			Duration: e.Duration.String(),
			Peak:     e.Peak,
			Average:  e.Average,
			Severity: e.Severity,
			Samples:  e.Samples,
		}
	}
	return out
}

func FromDomainAlerts(alerts []domain.Alert) []Alert {
	out := make([]Alert, len(alerts))
	for i, a := range alerts {
		out[i] = Alert(a)
	}
	return out
}

func FromDomainProfile(p domain.SensorProfile) Sensor {
	return Sensor{
		Name:        p.Name,
		DisplayName: p.DisplayName,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Metrics:     p.Metrics(),
	}
}

func fromBuckets(buckets []domain.PatternBucket) []PatternBucket {
	out := make([]PatternBucket, len(buckets))
	for i, b := range buckets {
		out[i] = PatternBucket(b)
	}
	return out
}

func fromGaps(gaps []domain.Gap) []Gap {
	out := make([]Gap, len(gaps))
	for i, g := range gaps {
		out[i] = Gap{Start: g.Start, End: g.End, Duration: g.Duration.String()}
	}
	return out
}

package domain

import "time"

// Reading is a single timestamped sensor observation. Value holds the
// measurement the series was built for; Fields carries any other numeric
// columns the collector picked up alongside it.
type Reading struct {
	Timestamp time.Time
	Value     float64
	Fields    map[string]float64
	Latitude  *float64
	Longitude *float64
}

// Series is a time-ordered collection of readings for one metric.
// Construct it with analysis.NewSeries; the analyzer never mutates it.
type Series struct {
	Metric   string
	Readings []Reading
}

func (s Series) Empty() bool {
	return len(s.Readings) == 0
}

// Period returns the first and last timestamps of the series.
// Only meaningful for non-empty series.
func (s Series) Period() (start, end time.Time) {
	if s.Empty() {
		return time.Time{}, time.Time{}
	}
	return s.Readings[0].Timestamp, s.Readings[len(s.Readings)-1].Timestamp
}

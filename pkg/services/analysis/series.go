package analysis

import (
	"sort"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
)

// NewSeries builds a time-ordered series from raw readings. The input is
// copied, sorted by timestamp, and deduplicated: when several readings
// share a timestamp, the last one in input order wins. That matches the
// keep-last policy the collector applies to spreadsheet rows.
func NewSeries(metric string, readings []domain.Reading) domain.Series {
	sorted := make([]domain.Reading, len(readings))
	copy(sorted, readings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	deduped := make([]domain.Reading, 0, len(sorted))
	for i, r := range sorted {
		// The stable sort keeps input order within equal timestamps, so
		// the last entry of each run is the one to keep.
		if i+1 < len(sorted) && sorted[i+1].Timestamp.Equal(r.Timestamp) {
			continue
		}
		deduped = append(deduped, r)
	}

	return domain.Series{Metric: metric, Readings: deduped}
}

package analysis

import (
	"github.com/aq-tools/air-atlas/pkg/models/domain"
)

// quality compares the number of readings that arrived against the number
// the expected sampling interval predicts for the covered period, and
// lists the gaps where collection stalled.
func (a *Analyzer) quality(readings []domain.Reading) domain.DataQuality {
	n := len(readings)
	if n == 0 {
		return domain.DataQuality{Status: domain.StatusNoData}
	}

	start := readings[0].Timestamp
	end := readings[n-1].Timestamp

	// Fence-post count: a single reading is expected to be exactly one
	// reading, so a degenerate series still scores a full ratio.
	expected := int(end.Sub(start)/a.settings.ExpectedInterval) + 1
	ratio := float64(n) / float64(expected)
	if ratio > 1 {
		ratio = 1
	}

	q := domain.DataQuality{
		Status:       domain.StatusOK,
		Readings:     n,
		Expected:     expected,
		Completeness: ratio,
		Gaps:         []domain.Gap{},
	}

	for i := 1; i < n; i++ {
		delta := readings[i].Timestamp.Sub(readings[i-1].Timestamp)
		if delta > a.settings.GapThreshold {
			q.Gaps = append(q.Gaps, domain.Gap{
				Start:    readings[i-1].Timestamp,
				End:      readings[i].Timestamp,
				Duration: delta,
			})
		}
	}
	return q
}

package collector

import (
	"context"
	"time"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
)

// Collector materializes readings for one metric of a sensor. Row-level
// problems (unparseable timestamps, non-numeric cells) are absorbed into
// CollectStats; only transport and configuration failures return an error.
type Collector interface {
	Fetch(ctx context.Context, metric string) ([]domain.Reading, CollectStats, error)
}

// CollectStats reports how much of the raw table survived cleaning.
type CollectStats struct {
	Rows    int
	Dropped int
}

// FilterSince keeps readings at or after the cutoff. The input is assumed
// time-ordered, so a binary scan is not worth the code.
func FilterSince(readings []domain.Reading, cutoff time.Time) []domain.Reading {
	out := make([]domain.Reading, 0, len(readings))
	for _, r := range readings {
		if !r.Timestamp.Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}

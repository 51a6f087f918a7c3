package analysis

import (
	"sort"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
	"gonum.org/v1/gonum/stat"
)

// categories buckets every reading into the threshold table. Values
// outside all configured ranges land in the Unclassified bucket instead of
// being dropped.
func (a *Analyzer) categories(readings []domain.Reading) domain.CategoryDistribution {
	counts := make(map[string]int)
	unhealthy := 0
	for _, r := range readings {
		rng, ok := a.settings.Thresholds.Classify(r.Value)
		if !ok {
			counts[domain.UnclassifiedLabel]++
			continue
		}
		counts[rng.Label]++
		if rng.Unhealthy {
			unhealthy++
		}
	}

	return domain.CategoryDistribution{
		Status:           domain.StatusOK,
		Counts:           counts,
		UnhealthyPercent: 100 * float64(unhealthy) / float64(len(readings)),
	}
}

// exposure summarizes the measurement against health guideline values.
func (a *Analyzer) exposure(readings []domain.Reading) domain.Exposure {
	vs := values(readings)
	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	sort.Float64s(sorted)

	e := domain.Exposure{
		Status:  domain.StatusOK,
		Average: stat.Mean(vs, nil),
		Max:     sorted[len(sorted)-1],
		P95:     stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
	for _, v := range vs {
		if v > a.settings.WHOGuideline {
			e.WHOExceedances++
		}
		if v > a.settings.EPAStandard {
			e.EPAExceedances++
		}
	}
	return e
}

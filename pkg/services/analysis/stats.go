package analysis

import (
	"sort"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
	"gonum.org/v1/gonum/stat"
)

func values(readings []domain.Reading) []float64 {
	vs := make([]float64, len(readings))
	for i, r := range readings {
		vs[i] = r.Value
	}
	return vs
}

func valueStats(readings []domain.Reading) domain.ValueStats {
	vs := values(readings)
	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	sort.Float64s(sorted)

	s := domain.ValueStats{
		Status: domain.StatusOK,
		Mean:   stat.Mean(vs, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Count:  len(vs),
	}
	if len(vs) > 1 {
		s.Std = stat.StdDev(vs, nil)
	}
	return s
}

func mean(vs []float64) float64 {
	return stat.Mean(vs, nil)
}

func median(vs []float64) float64 {
	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

package analysis

import (
	"math"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// trend fits an ordinary least squares line of value against elapsed
// seconds and derives direction and significance from the slope.
func (a *Analyzer) trend(readings []domain.Reading) domain.Trend {
	n := len(readings)
	if n < a.settings.MinTrendSamples {
		return domain.Trend{Status: domain.StatusInsufficientData}
	}

	origin := readings[0].Timestamp
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, r := range readings {
		xs[i] = r.Timestamp.Sub(origin).Seconds()
		ys[i] = r.Value
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)
	if math.IsNaN(r2) {
		// Constant series have zero total variance; report no fit rather
		// than leaking a NaN into the JSON encoder.
		r2 = 0
	}

	slopePerHour := beta * 3600
	t := domain.Trend{
		Status:   domain.StatusOK,
		Slope:    slopePerHour,
		RSquared: r2,
	}

	switch {
	case math.Abs(slopePerHour) <= a.settings.StableSlope:
		t.Direction = domain.TrendStable
	case slopePerHour > 0:
		t.Direction = domain.TrendIncreasing
	default:
		t.Direction = domain.TrendDecreasing
	}

	t.PValue = slopePValue(xs, ys, alpha, beta)
	t.Significant = t.Direction != domain.TrendStable && t.PValue < a.settings.SignificanceLevel
	return t
}

// slopePValue computes the two-sided p-value for the null hypothesis of a
// zero slope, using the t distribution with n-2 degrees of freedom.
func slopePValue(xs, ys []float64, alpha, beta float64) float64 {
	n := len(xs)
	df := float64(n - 2)
	if df < 1 {
		return 1
	}

	xbar := stat.Mean(xs, nil)
	var ssr, sxx float64
	for i := range xs {
		resid := ys[i] - (alpha + beta*xs[i])
		ssr += resid * resid
		dx := xs[i] - xbar
		sxx += dx * dx
	}

	if sxx == 0 {
		// All observations share one timestamp; no slope is estimable.
		return 1
	}
	if ssr == 0 {
		// Perfect fit. A zero slope through constant data is not
		// evidence of a trend; anything else is as strong as it gets.
		if beta == 0 {
			return 1
		}
		return 0
	}

	se := math.Sqrt(ssr / df / sxx)
	tstat := beta / se
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * dist.CDF(-math.Abs(tstat))
}

package analyzer

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// CalculateTrend fits usage against hours elapsed since the first sample.
// Fewer than two samples, or samples sharing one timestamp, give a zero trend.
func CalculateTrend(samples []MetricSample) Trend {
	if len(samples) < 2 {
		return Trend{}
	}

	start := samples[0].Timestamp
	x := make([]float64, len(samples))
	y := make([]float64, len(samples))
	for i, sample := range samples {
		x[i] = sample.Timestamp.Sub(start).Hours()
		y[i] = sample.Value
	}

	if stat.Variance(x, nil) == 0 {
		return Trend{Intercept: stat.Mean(y, nil)}
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	r2 := stat.RSquared(x, y, nil, intercept, slope)

	// A flat series has no variance to explain
	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		r2 = 0
	}
	r2 = math.Max(0, math.Min(1, r2))

	return Trend{
		SlopePerHour: slope,
		Intercept:    intercept,
		RSquared:     r2,
	}
}

package analyzer

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// CalculatePercentiles computes P50, P90, P95, P99, and peak from samples
func CalculatePercentiles(samples []MetricSample) (*Percentiles, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples provided")
	}

	values := sampleValues(samples)
	sort.Float64s(values)

	percentiles := &Percentiles{
		Average: stat.Mean(values, nil),
		P50:     calculatePercentile(values, 50),
		P90:     calculatePercentile(values, 90),
		P95:     calculatePercentile(values, 95),
		P99:     calculatePercentile(values, 99),
		Peak:    values[len(values)-1],
		Min:     values[0],
	}

	return percentiles, nil
}

// calculatePercentile computes the Nth percentile using linear interpolation
// between closest ranks over n-1 intervals
func calculatePercentile(sortedValues []float64, percentile float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}

	if len(sortedValues) == 1 {
		return sortedValues[0]
	}

	n := float64(len(sortedValues))
	rank := (percentile / 100.0) * (n - 1)

	lowerIndex := int(math.Floor(rank))
	upperIndex := int(math.Ceil(rank))

	if lowerIndex == upperIndex {
		return sortedValues[lowerIndex]
	}

	lowerValue := sortedValues[lowerIndex]
	upperValue := sortedValues[upperIndex]
	fraction := rank - float64(lowerIndex)

	return lowerValue + (upperValue-lowerValue)*fraction
}

// CalculateCoefficientOfVariation measures the relative variability
// High CV (>0.5) = spiky workload
// Low CV (<0.2) = steady workload
func CalculateCoefficientOfVariation(samples []MetricSample) float64 {
	if len(samples) < 2 {
		return 0
	}

	mean, stdDev := stat.PopMeanStdDev(sampleValues(samples), nil)
	if mean == 0 {
		return 0
	}

	return stdDev / mean
}

// AnalyzeUsagePattern determines if a series is steady, spiky, or highly variable
func AnalyzeUsagePattern(samples []MetricSample) UsagePattern {
	if len(samples) < 10 {
		return UsagePattern{
			Type:       "unknown",
			Variation:  0,
			Confidence: 0,
		}
	}

	cv := CalculateCoefficientOfVariation(samples)

	var patternType string
	var confidence float64

	switch {
	case cv < 0.15:
		patternType = "steady"
		confidence = 0.95
	case cv < 0.35:
		patternType = "moderate"
		confidence = 0.85
	case cv < 0.70:
		patternType = "spiky"
		confidence = 0.80
	default:
		patternType = "highly-variable"
		confidence = 0.75
	}

	return UsagePattern{
		Type:       patternType,
		Variation:  cv,
		Confidence: confidence,
	}
}

func sampleValues(samples []MetricSample) []float64 {
	values := make([]float64, len(samples))
	for i, sample := range samples {
		values[i] = sample.Value
	}
	return values
}

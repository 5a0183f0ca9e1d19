package analyzer

import "time"

// MetricSample represents a single utilization data point
type MetricSample struct {
	Timestamp time.Time
	Value     float64
}

// UsageStats is the descriptive analysis of both utilization series
type UsageStats struct {
	Start       time.Time
	End         time.Time
	SampleCount int

	CPU    SeriesStats
	Memory SeriesStats
}

// SeriesStats describes one utilization series
type SeriesStats struct {
	Percentiles Percentiles
	Pattern     UsagePattern
	Trend       Trend
}

// Percentiles contains statistical percentiles
type Percentiles struct {
	Average float64
	P50     float64
	P90     float64
	P95     float64
	P99     float64
	Peak    float64
	Min     float64
}

// UsagePattern describes usage behavior
type UsagePattern struct {
	Type       string  // "steady", "moderate", "spiky", "highly-variable", "unknown"
	Variation  float64 // Coefficient of variation
	Confidence float64 // How confident we are (0-1)
}

// Trend is the least-squares fit of a series against elapsed time
type Trend struct {
	SlopePerHour float64 // percentage points per hour
	Intercept    float64
	RSquared     float64
}

package analyzer

import (
	"fmt"

	"github.com/opscart/warehouse-efficiency-analyzer/pkg/models"
)

// CPUSamples extracts the CPU utilization series from a table
func CPUSamples(table []models.Observation) []MetricSample {
	return extractSamples(table, func(o models.Observation) float64 { return o.CPUUsage })
}

// MemorySamples extracts the memory utilization series from a table
func MemorySamples(table []models.Observation) []MetricSample {
	return extractSamples(table, func(o models.Observation) float64 { return o.MemoryUsage })
}

func extractSamples(table []models.Observation, value func(models.Observation) float64) []MetricSample {
	samples := make([]MetricSample, len(table))
	for i, obs := range table {
		samples[i] = MetricSample{
			Timestamp: obs.Timestamp,
			Value:     value(obs),
		}
	}
	return samples
}

// CalculateUsageStats describes both utilization series of a table
func CalculateUsageStats(table []models.Observation) (*UsageStats, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("no observations provided")
	}

	cpu, err := describeSeries(CPUSamples(table))
	if err != nil {
		return nil, fmt.Errorf("failed to analyze CPU usage: %w", err)
	}

	memory, err := describeSeries(MemorySamples(table))
	if err != nil {
		return nil, fmt.Errorf("failed to analyze memory usage: %w", err)
	}

	start, end := models.Window(table)

	return &UsageStats{
		Start:       start,
		End:         end,
		SampleCount: len(table),
		CPU:         *cpu,
		Memory:      *memory,
	}, nil
}

func describeSeries(samples []MetricSample) (*SeriesStats, error) {
	percentiles, err := CalculatePercentiles(samples)
	if err != nil {
		return nil, err
	}

	return &SeriesStats{
		Percentiles: *percentiles,
		Pattern:     AnalyzeUsagePattern(samples),
		Trend:       CalculateTrend(samples),
	}, nil
}

package generator

import (
	"math/rand/v2"
	"time"

	"github.com/opscart/warehouse-efficiency-analyzer/pkg/models"
)

// DefaultMinutes is one day of per-minute telemetry
const DefaultMinutes = 1440

// Distribution parameters for the synthetic workload
const (
	CPUMean      = 50.0
	CPUStdDev    = 20.0
	MemoryMean   = 60.0
	MemoryStdDev = 25.0

	AutoScalingProbability = 0.01

	Resolution = time.Minute
)

// Generator produces synthetic warehouse telemetry from an injected random source
type Generator struct {
	rng *rand.Rand
}

// New creates a generator drawing from rng
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded creates a generator with a reproducible PCG source
func NewSeeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed)))
}

// Generate builds a table of minutes observations at one-minute spacing,
// oldest first, with the last row stamped exactly at now.
func (g *Generator) Generate(now time.Time, minutes int) []models.Observation {
	if minutes <= 0 {
		return []models.Observation{}
	}

	start := now.Add(-time.Duration(minutes-1) * Resolution)
	table := make([]models.Observation, minutes)

	for i := 0; i < minutes; i++ {
		// Draw order is fixed per row so a seed always yields the same table
		cpu := g.normal(CPUMean, CPUStdDev)
		memory := g.normal(MemoryMean, MemoryStdDev)

		event := 0
		if g.rng.Float64() < AutoScalingProbability {
			event = 1
		}

		table[i] = models.Observation{
			Timestamp:        start.Add(time.Duration(i) * Resolution),
			CPUUsage:         clampPercent(cpu),
			MemoryUsage:      clampPercent(memory),
			AutoScalingEvent: event,
		}
	}

	return table
}

func (g *Generator) normal(mean, stdDev float64) float64 {
	return g.rng.NormFloat64()*stdDev + mean
}

// clampPercent bounds a utilization value to [0, 100]
func clampPercent(v float64) float64 {
	return max(0, min(100, v))
}

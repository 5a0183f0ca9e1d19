package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/opscart/warehouse-efficiency-analyzer/pkg/models"
)

const namespace = "warehouse"

// Collector holds the metrics of a single analysis run
type Collector struct {
	registry *prometheus.Registry

	observations           prometheus.Gauge
	idleMinutes            prometheus.Gauge
	overProvisionedMinutes prometheus.Gauge
	autoScalingEvents      prometheus.Gauge
	recommendations        prometheus.Gauge
	cpuUsage               prometheus.Histogram
	memoryUsage            prometheus.Histogram
}

// NewCollector creates a collector on its own registry, labelled with runID
func NewCollector(runID string) *Collector {
	labels := prometheus.Labels{"run_id": runID}
	percentBuckets := prometheus.LinearBuckets(10, 10, 10)

	c := &Collector{
		registry: prometheus.NewRegistry(),
		observations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "observations",
			Help:        "Number of telemetry rows analyzed.",
			ConstLabels: labels,
		}),
		idleMinutes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "idle_minutes",
			Help:        "Minutes with CPU usage below the idle threshold.",
			ConstLabels: labels,
		}),
		overProvisionedMinutes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "over_provisioned_minutes",
			Help:        "Minutes with memory usage below the over-provisioning threshold.",
			ConstLabels: labels,
		}),
		autoScalingEvents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "auto_scaling_events",
			Help:        "Auto-scaling events in the analyzed window.",
			ConstLabels: labels,
		}),
		recommendations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "recommendations",
			Help:        "Recommendations produced by the efficiency rules.",
			ConstLabels: labels,
		}),
		cpuUsage: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "cpu_usage_percent",
			Help:        "Distribution of per-minute CPU usage.",
			Buckets:     percentBuckets,
			ConstLabels: labels,
		}),
		memoryUsage: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "memory_usage_percent",
			Help:        "Distribution of per-minute memory usage.",
			Buckets:     percentBuckets,
			ConstLabels: labels,
		}),
	}

	c.registry.MustRegister(
		c.observations,
		c.idleMinutes,
		c.overProvisionedMinutes,
		c.autoScalingEvents,
		c.recommendations,
		c.cpuUsage,
		c.memoryUsage,
	)

	return c
}

// Record sets the run gauges from the summary and feeds every row into the
// usage histograms
func (c *Collector) Record(table []models.Observation, summary *models.Summary) {
	c.observations.Set(float64(len(table)))
	c.idleMinutes.Set(float64(summary.IdleMinutes))
	c.overProvisionedMinutes.Set(float64(summary.OverProvisionedMinutes))
	c.autoScalingEvents.Set(float64(summary.AutoScalingEventCount))
	c.recommendations.Set(float64(len(summary.Recommendations)))

	for _, obs := range table {
		c.cpuUsage.Observe(obs.CPUUsage)
		c.memoryUsage.Observe(obs.MemoryUsage)
	}
}

// Registry exposes the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Gather returns the current metric families, sorted by name
func (c *Collector) Gather() ([]*dto.MetricFamily, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}
	return families, nil
}

// WriteText renders all metrics in the Prometheus text exposition format
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.Gather()
	if err != nil {
		return err
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}

package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opscart/warehouse-efficiency-analyzer/pkg/analyzer"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/generator"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/metrics"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/models"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/visualizer"
)

// Options configures a single analysis run
type Options struct {
	RunID     string
	Generator *generator.Generator
	Now       time.Time // reference instant stamped on the newest row
	Minutes   int
	ChartPath string

	// Optional; metrics are recorded only when set
	Metrics *metrics.Collector
}

// Result is everything a run produced
type Result struct {
	RunID     string
	Now       time.Time
	Table     []models.Observation
	Summary   *models.Summary
	Stats     *analyzer.UsageStats // nil for an empty table
	ChartPath string
}

// Run generates telemetry, analyzes it and renders the usage chart
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Generator == nil {
		return nil, fmt.Errorf("generator must be set")
	}
	if opts.ChartPath == "" {
		opts.ChartPath = visualizer.DefaultChartPath
	}
	if opts.RunID == "" {
		opts.RunID = uuid.New().String()
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	logger := zerolog.Ctx(ctx)

	table := opts.Generator.Generate(opts.Now, opts.Minutes)
	start, end := models.Window(table)
	logger.Debug().
		Int("rows", len(table)).
		Time("start", start).
		Time("end", end).
		Msg("generated synthetic telemetry")

	summary := analyzer.AnalyzeEfficiency(table)
	logger.Info().
		Int("idle_minutes", summary.IdleMinutes).
		Int("over_provisioned_minutes", summary.OverProvisionedMinutes).
		Int("auto_scaling_events", summary.AutoScalingEventCount).
		Int("recommendations", len(summary.Recommendations)).
		Msg("efficiency analysis complete")

	var stats *analyzer.UsageStats
	if len(table) > 0 {
		var err error
		stats, err = analyzer.CalculateUsageStats(table)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate usage statistics: %w", err)
		}
		logger.Debug().
			Str("cpu_pattern", stats.CPU.Pattern.Type).
			Float64("cpu_cv", stats.CPU.Pattern.Variation).
			Float64("cpu_p95", stats.CPU.Percentiles.P95).
			Str("memory_pattern", stats.Memory.Pattern.Type).
			Float64("memory_cv", stats.Memory.Pattern.Variation).
			Float64("memory_p95", stats.Memory.Percentiles.P95).
			Msg("usage pattern analysis")
	}

	if opts.Metrics != nil {
		opts.Metrics.Record(table, summary)
	}

	if err := visualizer.RenderUsageChart(table, opts.ChartPath); err != nil {
		return nil, fmt.Errorf("failed to render usage chart: %w", err)
	}
	logger.Info().Str("path", opts.ChartPath).Msg("usage chart written")

	return &Result{
		RunID:     opts.RunID,
		Now:       opts.Now,
		Table:     table,
		Summary:   summary,
		Stats:     stats,
		ChartPath: opts.ChartPath,
	}, nil
}

package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/opscart/warehouse-efficiency-analyzer/pkg/analyzer"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/models"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/reporter"
)

// JSONHandler encodes the run summary, findings and usage statistics
type JSONHandler struct {
	w io.Writer
}

type jsonReport struct {
	RunID       string          `json:"run_id"`
	GeneratedAt string          `json:"generated_at"`
	Window      *jsonWindow     `json:"window,omitempty"`
	ChartPath   string          `json:"chart_path"`
	Summary     *models.Summary `json:"summary"`
	Findings    []jsonFinding   `json:"findings"`
	Stats       *jsonUsageStats `json:"stats,omitempty"`
}

type jsonWindow struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Samples int    `json:"samples"`
}

type jsonFinding struct {
	Type    models.RecommendationType `json:"type"`
	Message string                    `json:"message"`
}

type jsonUsageStats struct {
	CPU    jsonSeries `json:"cpu"`
	Memory jsonSeries `json:"memory"`
}

type jsonSeries struct {
	Average      float64 `json:"average"`
	P50          float64 `json:"p50"`
	P90          float64 `json:"p90"`
	P95          float64 `json:"p95"`
	P99          float64 `json:"p99"`
	Peak         float64 `json:"peak"`
	Min          float64 `json:"min"`
	Pattern      string  `json:"pattern"`
	Variation    float64 `json:"variation"`
	SlopePerHour float64 `json:"slope_per_hour"`
	RSquared     float64 `json:"r_squared"`
}

func (h *JSONHandler) Format() string { return "json" }

func (h *JSONHandler) Display(ctx context.Context, report *reporter.Report) error {
	out := jsonReport{
		RunID:       report.RunID,
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		ChartPath:   report.ChartPath,
		Summary:     report.Summary,
		Findings:    make([]jsonFinding, 0, len(report.Findings)),
	}
	for _, f := range report.Findings {
		out.Findings = append(out.Findings, jsonFinding{Type: f.Type, Message: f.Message})
	}
	if len(report.Observations) > 0 {
		out.Window = &jsonWindow{
			Start:   report.WindowStart.Format(time.RFC3339),
			End:     report.WindowEnd.Format(time.RFC3339),
			Samples: len(report.Observations),
		}
	}
	if report.Stats != nil {
		out.Stats = &jsonUsageStats{
			CPU:    seriesJSON(report.Stats.CPU),
			Memory: seriesJSON(report.Stats.Memory),
		}
	}

	encoder := json.NewEncoder(h.w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func seriesJSON(s analyzer.SeriesStats) jsonSeries {
	return jsonSeries{
		Average:      s.Percentiles.Average,
		P50:          s.Percentiles.P50,
		P90:          s.Percentiles.P90,
		P95:          s.Percentiles.P95,
		P99:          s.Percentiles.P99,
		Peak:         s.Percentiles.Peak,
		Min:          s.Percentiles.Min,
		Pattern:      s.Pattern.Type,
		Variation:    s.Pattern.Variation,
		SlopePerHour: s.Trend.SlopePerHour,
		RSquared:     s.Trend.RSquared,
	}
}

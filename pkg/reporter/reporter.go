package reporter

import (
	"time"

	"github.com/opscart/warehouse-efficiency-analyzer/pkg/analyzer"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/models"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/runner"
)

// ReportTitle heads every rendering of the summary
const ReportTitle = "Warehouse Efficiency Analysis Summary"

// Report contains all data for rendering a run
type Report struct {
	Title       string
	RunID       string
	GeneratedAt time.Time
	WindowStart time.Time
	WindowEnd   time.Time
	ChartPath   string

	Summary      *models.Summary
	Stats        *analyzer.UsageStats
	Findings     []Finding
	Observations []models.Observation
}

// Finding pairs a fired recommendation with the rule that produced it
type Finding struct {
	Type    models.RecommendationType
	Message string
}

// SummaryLine is one labelled scalar of the summary
type SummaryLine struct {
	Label string
	Value int
}

// New builds a report from a finished run
func New(result *runner.Result) *Report {
	start, end := models.Window(result.Table)

	return &Report{
		Title:        ReportTitle,
		RunID:        result.RunID,
		GeneratedAt:  result.Now,
		WindowStart:  start,
		WindowEnd:    end,
		ChartPath:    result.ChartPath,
		Summary:      result.Summary,
		Stats:        result.Stats,
		Findings:     findings(result.Summary),
		Observations: result.Table,
	}
}

// Lines returns the scalar summary fields in display order
func (r *Report) Lines() []SummaryLine {
	return []SummaryLine{
		{Label: "Idle Time (minutes)", Value: r.Summary.IdleMinutes},
		{Label: "Over-Provisioned Time (minutes)", Value: r.Summary.OverProvisionedMinutes},
		{Label: "Auto-Scaling Events", Value: r.Summary.AutoScalingEventCount},
	}
}

// findings matches recommendation messages back to their rule types
func findings(summary *models.Summary) []Finding {
	types := make(map[string]models.RecommendationType)
	for _, rule := range analyzer.Rules() {
		types[rule.Message] = rule.Type
	}

	out := make([]Finding, 0, len(summary.Recommendations))
	for _, msg := range summary.Recommendations {
		out = append(out, Finding{Type: types[msg], Message: msg})
	}
	return out
}

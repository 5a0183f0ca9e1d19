package output

import (
	"context"
	"io"

	"github.com/opscart/warehouse-efficiency-analyzer/pkg/metrics"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/reporter"
)

// CSVHandler streams the observation table and summary as CSV
type CSVHandler struct {
	w io.Writer
}

func (h *CSVHandler) Format() string { return "csv" }

func (h *CSVHandler) Display(ctx context.Context, report *reporter.Report) error {
	return reporter.GenerateCSV(report, h.w)
}

// HTMLHandler renders the standalone HTML report
type HTMLHandler struct {
	w io.Writer
}

func (h *HTMLHandler) Format() string { return "html" }

func (h *HTMLHandler) Display(ctx context.Context, report *reporter.Report) error {
	return reporter.GenerateHTML(report, h.w)
}

// MetricsHandler dumps the run's Prometheus registry
type MetricsHandler struct {
	w         io.Writer
	collector *metrics.Collector
}

func (h *MetricsHandler) Format() string { return "metrics" }

func (h *MetricsHandler) Display(ctx context.Context, report *reporter.Report) error {
	return h.collector.WriteText(h.w)
}

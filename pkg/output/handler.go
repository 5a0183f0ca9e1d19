package output

import (
	"context"
	"fmt"
	"io"

	"github.com/opscart/warehouse-efficiency-analyzer/pkg/metrics"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/reporter"
)

// Handler defines the interface for output formatting
type Handler interface {
	Display(ctx context.Context, report *reporter.Report) error
	Format() string
}

// NewHandler returns the handler for format writing to w. The collector is
// only consulted by the metrics format.
func NewHandler(format string, w io.Writer, collector *metrics.Collector) (Handler, error) {
	switch format {
	case "", "text":
		return &TextHandler{w: w}, nil
	case "json":
		return &JSONHandler{w: w}, nil
	case "csv":
		return &CSVHandler{w: w}, nil
	case "html":
		return &HTMLHandler{w: w}, nil
	case "metrics":
		if collector == nil {
			return nil, fmt.Errorf("metrics output requires a collector")
		}
		return &MetricsHandler{w: w, collector: collector}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

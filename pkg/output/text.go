package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/opscart/warehouse-efficiency-analyzer/pkg/reporter"
)

// TextHandler prints the plain summary block
type TextHandler struct {
	w io.Writer
}

func (h *TextHandler) Format() string { return "text" }

// Display writes the title, the three counts and one "- " line per
// recommendation
func (h *TextHandler) Display(ctx context.Context, report *reporter.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s:\n", report.Title)
	for _, line := range report.Lines() {
		fmt.Fprintf(&b, "%s: %d\n", line.Label, line.Value)
	}
	for _, rec := range report.Summary.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	if _, err := io.WriteString(h.w, b.String()); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

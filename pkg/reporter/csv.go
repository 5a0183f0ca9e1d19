package reporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// GenerateCSV writes every observation followed by a summary block
func GenerateCSV(report *Report, writer io.Writer) error {
	w := csv.NewWriter(writer)

	header := []string{
		"Timestamp",
		"CPU Usage (%)",
		"Memory Usage (%)",
		"Auto-Scaling Event",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, obs := range report.Observations {
		row := []string{
			obs.Timestamp.Format(time.RFC3339),
			strconv.FormatFloat(obs.CPUUsage, 'f', 2, 64),
			strconv.FormatFloat(obs.MemoryUsage, 'f', 2, 64),
			strconv.Itoa(obs.AutoScalingEvent),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	rows := [][]string{
		{},
		{"SUMMARY"},
		{"Run ID", report.RunID},
	}
	for _, line := range report.Lines() {
		rows = append(rows, []string{line.Label, strconv.Itoa(line.Value)})
	}

	rows = append(rows, []string{}, []string{"RECOMMENDATIONS"})
	for _, f := range report.Findings {
		rows = append(rows, []string{string(f.Type), f.Message})
	}

	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV summary: %w", err)
	}

	return nil
}

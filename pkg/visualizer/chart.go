package visualizer

import (
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/opscart/warehouse-efficiency-analyzer/pkg/models"
)

// DefaultChartPath is where the usage chart lands, relative to the working directory
const DefaultChartPath = "warehouse_usage_plot.png"

const (
	chartTitle  = "Warehouse CPU and Memory Usage Over Time"
	cpuLabel    = "CPU Usage (%)"
	memoryLabel = "Memory Usage (%)"

	chartWidth  = 12 * vg.Inch
	chartHeight = 6 * vg.Inch
)

// RenderUsageChart draws CPU and memory usage against time and saves the
// chart to path, replacing any existing file. The format follows the path's
// extension.
func RenderUsageChart(table []models.Observation, path string) error {
	p, err := newUsagePlot(table)
	if err != nil {
		return err
	}

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("failed to save chart to %s: %w", path, err)
	}

	return nil
}

func newUsagePlot(table []models.Observation) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = chartTitle
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Usage (%)"
	p.Y.Min = 0
	p.Y.Max = 100
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	if len(table) == 0 {
		// Nothing to draw; keep a sane X range so the axes still render
		p.X.Min = 0
		p.X.Max = 1
		return p, nil
	}

	loc := table[0].Timestamp.Location()
	p.X.Tick.Marker = plot.TimeTicks{
		Format: timeFormat(table),
		Time:   plot.UnixTimeIn(loc),
	}

	cpu := make(plotter.XYs, len(table))
	memory := make(plotter.XYs, len(table))
	for i, obs := range table {
		x := unixSeconds(obs.Timestamp)
		cpu[i].X, cpu[i].Y = x, obs.CPUUsage
		memory[i].X, memory[i].Y = x, obs.MemoryUsage
	}

	if err := plotutil.AddLines(p, cpuLabel, cpu, memoryLabel, memory); err != nil {
		return nil, fmt.Errorf("failed to add usage lines: %w", err)
	}

	return p, nil
}

// timeFormat shows dates once the table spans more than a day
func timeFormat(table []models.Observation) string {
	start, end := models.Window(table)
	if end.Sub(start) > 24*time.Hour {
		return "01-02 15:04"
	}
	return "15:04"
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

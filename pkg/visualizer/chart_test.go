package visualizer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opscart/warehouse-efficiency-analyzer/pkg/models"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func sampleTable(n int) []models.Observation {
	start := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	table := make([]models.Observation, n)
	for i := range table {
		table[i] = models.Observation{
			Timestamp:   start.Add(time.Duration(i) * time.Minute),
			CPUUsage:    float64(i % 100),
			MemoryUsage: float64((i * 7) % 100),
		}
	}
	return table
}

func TestRenderUsageChart_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.png")

	err := RenderUsageChart(sampleTable(240), path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic), "expected PNG signature")
}

func TestRenderUsageChart_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.png")
	require.NoError(t, os.WriteFile(path, []byte("stale contents"), 0o644))

	require.NoError(t, RenderUsageChart(sampleTable(30), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestRenderUsageChart_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "usage.png")

	err := RenderUsageChart(sampleTable(10), path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save chart")
}

func TestNewUsagePlot_Labels(t *testing.T) {
	p, err := newUsagePlot(sampleTable(5))
	require.NoError(t, err)

	assert.Equal(t, chartTitle, p.Title.Text)
	assert.Equal(t, "Time", p.X.Label.Text)
	assert.Equal(t, "Usage (%)", p.Y.Label.Text)
}

func TestTimeFormat(t *testing.T) {
	assert.Equal(t, "15:04", timeFormat(sampleTable(1440)))
	assert.Equal(t, "01-02 15:04", timeFormat(sampleTable(1442)))
}

package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opscart/warehouse-efficiency-analyzer/pkg/analyzer"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/generator"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/metrics"
)

var referenceTime = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func TestRun_EndToEnd(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	ctx := logger.WithContext(context.Background())
	chartPath := filepath.Join(t.TempDir(), "usage.png")
	collector := metrics.NewCollector("run-e2e")

	result, err := Run(ctx, Options{
		RunID:     "run-e2e",
		Generator: generator.NewSeeded(11),
		Now:       referenceTime,
		Minutes:   generator.DefaultMinutes,
		ChartPath: chartPath,
		Metrics:   collector,
	})
	require.NoError(t, err)

	assert.Equal(t, "run-e2e", result.RunID)
	assert.Len(t, result.Table, generator.DefaultMinutes)
	assert.True(t, result.Table[len(result.Table)-1].Timestamp.Equal(referenceTime))
	assert.Equal(t, analyzer.AnalyzeEfficiency(result.Table), result.Summary)
	require.NotNil(t, result.Stats)
	assert.Equal(t, generator.DefaultMinutes, result.Stats.SampleCount)

	info, err := os.Stat(chartPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Contains(t, logs.String(), "efficiency analysis complete")
	assert.Contains(t, logs.String(), "usage chart written")

	count, err := testutil.GatherAndCount(collector.Registry(), "warehouse_idle_minutes")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRun_Deterministic(t *testing.T) {
	dir := t.TempDir()
	run := func(name string) *Result {
		result, err := Run(context.Background(), Options{
			Generator: generator.NewSeeded(5),
			Now:       referenceTime,
			Minutes:   300,
			ChartPath: filepath.Join(dir, name),
		})
		require.NoError(t, err)
		return result
	}

	first := run("a.png")
	second := run("b.png")

	assert.Equal(t, first.Table, second.Table)
	assert.Equal(t, first.Summary, second.Summary)
	assert.NotEqual(t, first.RunID, second.RunID, "run IDs should be generated per run")
}

func TestRun_EmptyTable(t *testing.T) {
	chartPath := filepath.Join(t.TempDir(), "empty.png")

	result, err := Run(context.Background(), Options{
		Generator: generator.NewSeeded(1),
		Now:       referenceTime,
		Minutes:   0,
		ChartPath: chartPath,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Table)
	assert.Nil(t, result.Stats)
	assert.Zero(t, result.Summary.IdleMinutes)
	assert.Empty(t, result.Summary.Recommendations)
	assert.FileExists(t, chartPath)
}

func TestRun_ChartWriteFailure(t *testing.T) {
	chartPath := filepath.Join(t.TempDir(), "missing", "usage.png")

	_, err := Run(context.Background(), Options{
		Generator: generator.NewSeeded(1),
		Now:       referenceTime,
		Minutes:   10,
		ChartPath: chartPath,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render usage chart")
}

func TestRun_RequiresGenerator(t *testing.T) {
	_, err := Run(context.Background(), Options{Minutes: 10})
	assert.Error(t, err)
}

package reporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHTML(t *testing.T) {
	report := newTestReport(t, wastefulTable())

	var buf bytes.Buffer
	require.NoError(t, GenerateHTML(report, &buf))
	html := buf.String()

	assert.Contains(t, html, "<title>Warehouse Efficiency Analysis Summary - run-123</title>")
	assert.Contains(t, html, "Idle Time (minutes)")
	assert.Contains(t, html, `<div class="value">70</div>`)
	assert.Contains(t, html, `<div class="value">100</div>`)
	assert.Contains(t, html, `<div class="value">25</div>`)
	assert.Contains(t, html, "reduce_active_hours")
	assert.Contains(t, html, "Review memory allocation and consider right-sizing resources.")
	assert.Contains(t, html, `<img src="warehouse_usage_plot.png"`)
	assert.Contains(t, html, "Usage Statistics")
	assert.Contains(t, html, "from 100 synthetic observations")
	assert.NotContains(t, html, "No thresholds exceeded.")
}

func TestGenerateHTML_EmptyTable(t *testing.T) {
	report := newTestReport(t, nil)

	var buf bytes.Buffer
	require.NoError(t, GenerateHTML(report, &buf))
	html := buf.String()

	assert.Contains(t, html, "No thresholds exceeded.")
	assert.NotContains(t, html, "Usage Statistics")
	assert.NotContains(t, html, "<strong>Window:</strong>")
}

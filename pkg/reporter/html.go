package reporter

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

const htmlTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - {{.RunID}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background: #f5f7fa;
            color: #333;
            padding: 20px;
            line-height: 1.6;
        }
        .container {
            max-width: 1400px;
            margin: 0 auto;
            background: white;
            border-radius: 8px;
            box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);
            overflow: hidden;
        }
        .header {
            background: linear-gradient(135deg, #0f766e 0%, #134e4a 100%);
            color: white;
            padding: 40px;
        }
        .header h1 {
            font-size: 2.4em;
            margin-bottom: 10px;
        }
        .summary {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(260px, 1fr));
            gap: 25px;
            padding: 40px;
        }
        .summary-card {
            padding: 30px;
            border-radius: 12px;
            border: 2px solid #e8eaed;
        }
        .summary-card h3 {
            color: #5f6368;
            font-size: 0.85em;
            text-transform: uppercase;
            letter-spacing: 1.5px;
            margin-bottom: 15px;
        }
        .summary-card .value {
            font-size: 3em;
            font-weight: 700;
            color: #202124;
            line-height: 1;
        }
        .section {
            padding: 40px;
        }
        .section h2 {
            font-size: 1.8em;
            margin-bottom: 25px;
            color: #202124;
        }
        .chart img {
            width: 100%;
            border: 1px solid #e8eaed;
            border-radius: 8px;
        }
        .recommendation {
            padding: 16px 20px;
            margin-bottom: 12px;
            border-left: 6px solid #f9ab00;
            background: #fef7e0;
            border-radius: 6px;
        }
        .type-badge {
            padding: 4px 10px;
            margin-right: 10px;
            border-radius: 6px;
            font-size: 0.75em;
            font-weight: 700;
            background: #202124;
            color: white;
        }
        .none {
            color: #1e8e3e;
            font-weight: 600;
        }
        .stats-table {
            width: 100%;
            border-collapse: collapse;
        }
        .stats-table th {
            background: #0f766e;
            color: white;
            padding: 14px;
            text-align: left;
        }
        .stats-table td {
            padding: 14px;
            border-bottom: 1px solid #f0f2f4;
        }
        .footer {
            background: #202124;
            color: #9aa0a6;
            padding: 30px;
            text-align: center;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
            <p><strong>Run:</strong> {{.RunID}}</p>
            <p><strong>Generated:</strong> {{.GeneratedAt.Format "January 2, 2006 15:04:05 MST"}}</p>
            {{if not .WindowStart.IsZero}}<p><strong>Window:</strong> {{.WindowStart.Format "2006-01-02 15:04"}} to {{.WindowEnd.Format "2006-01-02 15:04"}}</p>{{end}}
        </div>

        <div class="summary">
            {{range .Lines}}
            <div class="summary-card">
                <h3>{{.Label}}</h3>
                <div class="value">{{.Value}}</div>
            </div>
            {{end}}
        </div>

        <div class="section">
            <h2>Recommendations</h2>
            {{range .Findings}}
            <div class="recommendation">
                <span class="type-badge">{{.Type | lower}}</span>{{.Message}}
            </div>
            {{else}}
            <p class="none">No thresholds exceeded.</p>
            {{end}}
        </div>

        {{with .Stats}}
        <div class="section">
            <h2>Usage Statistics</h2>
            <table class="stats-table">
                <thead>
                    <tr>
                        <th>Series</th>
                        <th>Average</th>
                        <th>P50</th>
                        <th>P95</th>
                        <th>P99</th>
                        <th>Peak</th>
                        <th>Pattern</th>
                        <th>Trend (pts/h)</th>
                    </tr>
                </thead>
                <tbody>
                    <tr>
                        <td><strong>CPU</strong></td>
                        <td>{{pct .CPU.Percentiles.Average}}</td>
                        <td>{{pct .CPU.Percentiles.P50}}</td>
                        <td>{{pct .CPU.Percentiles.P95}}</td>
                        <td>{{pct .CPU.Percentiles.P99}}</td>
                        <td>{{pct .CPU.Percentiles.Peak}}</td>
                        <td>{{.CPU.Pattern.Type}}</td>
                        <td>{{printf "%+.3f" .CPU.Trend.SlopePerHour}}</td>
                    </tr>
                    <tr>
                        <td><strong>Memory</strong></td>
                        <td>{{pct .Memory.Percentiles.Average}}</td>
                        <td>{{pct .Memory.Percentiles.P50}}</td>
                        <td>{{pct .Memory.Percentiles.P95}}</td>
                        <td>{{pct .Memory.Percentiles.P99}}</td>
                        <td>{{pct .Memory.Percentiles.Peak}}</td>
                        <td>{{.Memory.Pattern.Type}}</td>
                        <td>{{printf "%+.3f" .Memory.Trend.SlopePerHour}}</td>
                    </tr>
                </tbody>
            </table>
        </div>
        {{end}}

        {{if .ChartPath}}
        <div class="section chart">
            <h2>CPU and Memory Usage</h2>
            <img src="{{.ChartPath}}" alt="Warehouse CPU and Memory Usage Over Time">
        </div>
        {{end}}

        <div class="footer">
            <p>Generated by <strong>warehouse-analyzer</strong> from {{len .Observations}} synthetic observations</p>
        </div>
    </div>
</body>
</html>
`

// GenerateHTML creates an HTML report
func GenerateHTML(report *Report, writer io.Writer) error {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"lower": func(s interface{}) string {
			return strings.ToLower(fmt.Sprintf("%v", s))
		},
		"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
	}).Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	if err := tmpl.Execute(writer, report); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return nil
}

package export

import (
	"fmt"
	"io"
	"os"
	"text/template"
	"time"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
)

// Reporter renders analysis reports to the console in a formatted text form.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

const reportTemplate = `
=== {{.Metric}} analysis ===
{{if ok .Period.Status -}}
Period: {{fmtTime .Period.Start}} to {{fmtTime .Period.End}} ({{printf "%.1f" .Period.Hours}} hours)
{{- else -}}
Period: no data
{{- end}}

{{if ok .Stats.Status -}}
Readings: {{.Stats.Count}}
Mean: {{printf "%.2f" .Stats.Mean}}  Median: {{printf "%.2f" .Stats.Median}}  Std: {{printf "%.2f" .Stats.Std}}
Min: {{printf "%.2f" .Stats.Min}}  Max: {{printf "%.2f" .Stats.Max}}
{{- else -}}
Statistics: no data
{{- end}}

Trend: {{if ok .Trend.Status -}}
{{.Trend.Direction}} ({{printf "%.3f" .Trend.Slope}}/hour, r²={{printf "%.3f" .Trend.RSquared}}, p={{printf "%.3f" .Trend.PValue}}{{if .Trend.Significant}}, significant{{end}})
{{- else if insufficient .Trend.Status -}}
insufficient data
{{- else -}}
no data
{{- end}}
{{- if ok .HourlyHighlights.Status}}
Peak hour: {{printf "%02d:00" .HourlyHighlights.PeakHour}} (mean {{printf "%.1f" .HourlyHighlights.PeakMean}})  Low hour: {{printf "%02d:00" .HourlyHighlights.LowHour}} (mean {{printf "%.1f" .HourlyHighlights.LowMean}})
{{- end}}
{{- if and (ok .WeekendSplit.Status) .WeekendSplit.HasRatio}}
Weekend/weekday ratio: {{printf "%.2f" .WeekendSplit.Ratio}}
{{- end}}

Events: {{len .Events}}
{{- range .Events}}
- {{fmtTime .Start}} to {{fmtTime .End}} ({{fmtDur .Duration}}): peak {{printf "%.1f" .Peak}}, avg {{printf "%.1f" .Average}}, {{.Severity}}
{{- end}}

{{if ok .Categories.Status -}}
Categories (unhealthy {{printf "%.1f" .Categories.UnhealthyPercent}}%):
{{- range $label, $count := .Categories.Counts}}
  {{$label}}: {{$count}}
{{- end}}
{{- else -}}
Categories: no data
{{- end}}

{{if ok .Exposure.Status -}}
Exposure: avg {{printf "%.1f" .Exposure.Average}}, max {{printf "%.1f" .Exposure.Max}}, p95 {{printf "%.1f" .Exposure.P95}} (WHO exceedances: {{.Exposure.WHOExceedances}}, EPA exceedances: {{.Exposure.EPAExceedances}})
{{- else -}}
Exposure: no data
{{- end}}

{{if ok .Quality.Status -}}
Completeness: {{printf "%.0f" (pct .Quality.Completeness)}}% ({{.Quality.Readings}}/{{.Quality.Expected}} readings, {{len .Quality.Gaps}} gaps)
{{- else -}}
Completeness: no data
{{- end}}
{{- if .Recommendations}}

Recommendations:
{{- range .Recommendations}}
- {{.}}
{{- end}}
{{- end}}
`

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"ok": func(s domain.FieldStatus) bool {
			return s == domain.StatusOK
		},
		"insufficient": func(s domain.FieldStatus) bool {
			return s == domain.StatusInsufficientData
		},
		"fmtTime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
		"fmtDur": func(d time.Duration) string {
			return d.String()
		},
		"pct": func(ratio float64) float64 {
			return ratio * 100
		},
	}

	t, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

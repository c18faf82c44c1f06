package formatter

import (
	"fmt"
	"sort"
	"strings"

	dto "github.com/prometheus/client_model/go"
)

// FormatMetrics renders gathered counters, gauges and histograms, one
// series per row. Other metric types are skipped.
func FormatMetrics(families []*dto.MetricFamily) string {
	headers := []string{"METRIC", "LABELS", "VALUE"}
	var rows [][]string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value string
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				value = fmt.Sprintf("%g", m.GetCounter().GetValue())
			case dto.MetricType_GAUGE:
				value = fmt.Sprintf("%g", m.GetGauge().GetValue())
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				value = fmt.Sprintf("n=%d sum=%.4fs", h.GetSampleCount(), h.GetSampleSum())
			default:
				continue
			}
			rows = append(rows, []string{mf.GetName(), formatLabels(m.GetLabel()), value})
		}
	}
	if len(rows) == 0 {
		return Dim("No metrics recorded.") + "\n"
	}
	return Header("metrics") + "\n" + RenderTable(headers, rows, 2)
}

func formatLabels(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.GetName()+"="+p.GetValue())
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

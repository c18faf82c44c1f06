package service

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver records use-case counts and latencies in Prometheus.
type MetricsObserver struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsObserver registers its collectors on reg.
func NewMetricsObserver(reg prometheus.Registerer) (*MetricsObserver, error) {
	m := &MetricsObserver{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atajados_use_case_calls_total",
				Help: "Service use cases executed, by name and result",
			},
			[]string{"use_case", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "atajados_use_case_duration_seconds",
				Help:    "Duration of service use cases in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"use_case"},
		),
	}
	for _, c := range []prometheus.Collector{m.calls, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *MetricsObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	result := "success"
	if !event.Success {
		result = "error"
	}
	m.calls.WithLabelValues(event.Name, result).Inc()
	m.duration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-метрик сервиса
// HTTP-метрики собираются в middleware, upstream-метрики - в клиенте Starliner
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests processed",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "http_requests_in_flight",
				Help:        "Number of HTTP requests currently being served",
				ConstLabels: constLabels,
			},
		),
		UpstreamRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "upstream_requests_total",
				Help:        "Total number of requests to the Starliner backend",
				ConstLabels: constLabels,
			},
			[]string{"operation", "outcome"},
		),
		UpstreamRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "upstream_request_duration_seconds",
				Help:        "Starliner backend request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.UpstreamRequestsTotal,
		m.UpstreamRequestDuration,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveUpstreamRequest фиксирует завершенный запрос к Starliner backend
// outcome: "success", "error" или "degraded"
func (m *Metrics) ObserveUpstreamRequest(operation, outcome string, duration time.Duration) {
	m.UpstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.UpstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

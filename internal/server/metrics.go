package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instrumentation for the HTTP surface. Each
// Metrics value owns its own registry so independent instances never collide
// on registration.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	activeRequests  prometheus.Gauge
	requestsTotal   prometheus.Counter
	requestErrors   prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

// NewMetrics builds the Prometheus registry, collectors and HTTP handler.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "enrichd_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "enrichd_requests_total",
			Help: "Total number of HTTP requests served.",
		}),
		requestErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "enrichd_request_errors_total",
			Help: "Total number of HTTP requests that returned a 4xx or 5xx status.",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "enrichd_request_duration_seconds",
			Help:    "HTTP request latency distribution.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}

	registry.MustRegister(
		m.activeRequests,
		m.requestsTotal,
		m.requestErrors,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests increases the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests decreases the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// RecordRequest records one completed request.
func (m *Metrics) RecordRequest(method, path string, status int, duration time.Duration) {
	m.requestsTotal.Inc()
	if status >= http.StatusBadRequest {
		m.requestErrors.Inc()
	}
	m.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// metricsMiddleware tracks in-flight requests and records per-request
// counters and latency.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		s.metrics.RecordRequest(r.Method, r.URL.Path, rec.status, time.Since(start))
	}
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the request-level Prometheus collectors for the service.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	predictionsTotal    *prometheus.CounterVec
	attributionFailures prometheus.Counter
	modelLoadFailures   prometheus.Counter
}

// NewMetrics creates and registers the service collectors on a dedicated
// registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "credit_http_requests_total",
			Help: "HTTP requests by path, method and status",
		}, []string{"path", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "credit_http_request_duration_seconds",
			Help:    "HTTP request latency by path",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
		predictionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "credit_predictions_total",
			Help: "Scoring decisions by decision band",
		}, []string{"decision"}),
		attributionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "credit_attribution_failures_total",
			Help: "Attribution computations that fell back to generic factors",
		}),
		modelLoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "credit_model_load_failures_total",
			Help: "Failed attempts to load the model artifact",
		}),
	}

	registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.predictionsTotal,
		m.attributionFailures,
		m.modelLoadFailures,
	)

	return m
}

// Middleware records per-request counters and latency.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.requestsTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the registry in Prometheus exposition format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// RecordDecision counts one scoring decision.
func (m *Metrics) RecordDecision(decision string) {
	m.predictionsTotal.WithLabelValues(decision).Inc()
}

// RecordAttributionFailure counts one attribution fallback.
func (m *Metrics) RecordAttributionFailure() {
	m.attributionFailures.Inc()
}

// RecordModelLoadFailure counts one failed artifact load.
func (m *Metrics) RecordModelLoadFailure() {
	m.modelLoadFailures.Inc()
}

// Package metrics exposes dispatch metrics in the Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dispatch"

// Metrics holds the service metrics on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	OrdersPlaced       *prometheus.CounterVec
	RebalanceDuration  prometheus.Histogram
	RebalanceFailures  prometheus.Counter
	OrdersByOutcome    *prometheus.GaugeVec
	HTTPRequestsTotal  *prometheus.CounterVec
	HTTPRequestLatency *prometheus.HistogramVec
}

// New creates the metrics and registers them with the Go and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.OrdersPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Orders created, by the status they were placed in",
		},
		[]string{"status"},
	)

	m.RebalanceDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rebalance_duration_seconds",
			Help:      "Duration of successful full-fleet rebalances",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	m.RebalanceFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rebalance_failures_total",
			Help:      "Rebalances rejected by result validation",
		},
	)

	m.OrdersByOutcome = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rebalance_orders",
			Help:      "Orders per status after the last rebalance",
		},
		[]string{"status"},
	)

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	registry.MustRegister(
		m.OrdersPlaced,
		m.RebalanceDuration,
		m.RebalanceFailures,
		m.OrdersByOutcome,
		m.HTTPRequestsTotal,
		m.HTTPRequestLatency,
	)

	return m
}

// Handler returns the scrape endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) OrderPlaced(status order.Status) {
	m.OrdersPlaced.WithLabelValues(status.String()).Inc()
}

func (m *Metrics) RebalanceCompleted(summary services.Summary, elapsed time.Duration) {
	m.RebalanceDuration.Observe(elapsed.Seconds())
	m.OrdersByOutcome.WithLabelValues(order.Assigned.String()).Set(float64(summary.Assigned))
	m.OrdersByOutcome.WithLabelValues(order.OnHold.String()).Set(float64(summary.OnHold))
	m.OrdersByOutcome.WithLabelValues(order.Pending.String()).Set(float64(summary.Pending))
	m.OrdersByOutcome.WithLabelValues(order.Unassignable.String()).Set(float64(summary.Unassignable))
}

func (m *Metrics) RebalanceFailed() {
	m.RebalanceFailures.Inc()
}

// Middleware records request counts and latency by route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)

			m.HTTPRequestsTotal.WithLabelValues(c.Request().Method, path, status).Inc()
			m.HTTPRequestLatency.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

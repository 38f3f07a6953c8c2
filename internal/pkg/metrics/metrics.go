// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and the ordering business operations.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics bundles the collectors registered by the service.
type ServerMetrics struct {
	Requests       *prometheus.CounterVec
	LatencyMS      *prometheus.HistogramVec
	OrdersPlaced   prometheus.Counter
	OrdersCanceled prometheus.Counter
}

// NewServerMetrics creates and registers the service collectors.
// Must be called at most once per process.
func NewServerMetrics() *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "foodorder",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "method", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "foodorder",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "foodorder",
		Name:      "orders_placed_total",
		Help:      "Total number of successfully placed orders.",
	})
	ordersCanceled := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "foodorder",
		Name:      "orders_canceled_total",
		Help:      "Total number of customer-canceled orders.",
	})

	prometheus.MustRegister(requests, latency, ordersPlaced, ordersCanceled)
	return &ServerMetrics{
		Requests:       requests,
		LatencyMS:      latency,
		OrdersPlaced:   ordersPlaced,
		OrdersCanceled: ordersCanceled,
	}
}

// Handler returns the Prometheus scrape endpoint handler.
func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.Handler()
}

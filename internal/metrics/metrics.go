// internal/metrics/metrics.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agrimarket_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agrimarket_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	remoteFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agrimarket_remote_fallbacks_total",
		Help: "Count of remote store operations that fell back to the local store",
	}, []string{"entity", "op"})

	busNotifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agrimarket_bus_notifications_total",
		Help: "Count of change notifications dispatched per topic",
	}, []string{"topic"})

	wsClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "agrimarket_ws_clients",
		Help: "Number of connected websocket dashboard clients",
	})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveFallback increments the fallback counter for an entity/operation.
func ObserveFallback(entity, op string) {
	remoteFallbacks.WithLabelValues(entity, op).Inc()
}

// ObserveNotification counts a dispatched bus notification.
func ObserveNotification(topic string) {
	busNotifications.WithLabelValues(topic).Inc()
}

// IncrementWSClients increments the connected client gauge.
func IncrementWSClients() {
	wsClients.Inc()
}

// DecrementWSClients decrements the connected client gauge.
func DecrementWSClients() {
	wsClients.Dec()
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventario_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inventario_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	authAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventario_auth_attempts_total",
		Help: "Login attempts by kind (usuario, cliente) and result",
	}, []string{"kind", "result"})

	authorizationDenied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventario_authorization_denied_total",
		Help: "Requests rejected by the session layer, by reason (unauthenticated, forbidden)",
	}, []string{"reason"})

	inventoryEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventario_events_published_total",
		Help: "Inventory events handed to the publisher, by type",
	}, []string{"type"})
)

// ObserveHTTPRequest registra una petición HTTP. path es la ruta registrada, no la URL cruda.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveLogin cuenta un intento de login. result: success | failure.
func ObserveLogin(kind, result string) {
	authAttempts.WithLabelValues(kind, result).Inc()
}

// ObserveDenied cuenta un rechazo del middleware de sesión.
func ObserveDenied(reason string) {
	authorizationDenied.WithLabelValues(reason).Inc()
}

// ObserveEvent cuenta un evento de inventario emitido.
func ObserveEvent(eventType string) {
	inventoryEvents.WithLabelValues(eventType).Inc()
}

package textsecure

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetrics exports client metrics to a Prometheus registry.
type PrometheusMetrics struct {
	messageTypes *prometheus.CounterVec
	pushFailures *prometheus.CounterVec
	routes       *prometheus.CounterVec
	errors       *prometheus.CounterVec
}

// NewPrometheusMetrics registers the client metrics on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		messageTypes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "textsecure_envelopes_total",
			Help: "Decoded envelopes by message type.",
		}, []string{"type"}),
		pushFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "textsecure_push_registration_failures_total",
			Help: "Failed push registrations by failure kind.",
		}, []string{"kind"}),
		routes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "textsecure_route_urls_total",
			Help: "Composed request URLs by route.",
		}, []string{"route"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "textsecure_errors_total",
			Help: "Client errors by category.",
		}, []string{"type"}),
	}
	reg.MustRegister(m.messageTypes, m.pushFailures, m.routes, m.errors)
	return m
}

// MetricsHandler returns a Prometheus HTTP handler bound to the registry.
func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func (m *PrometheusMetrics) IncrementMessageType(messageType MessageType) {
	m.messageTypes.WithLabelValues(ParseMessageType(int64(messageType)).String()).Inc()
}

func (m *PrometheusMetrics) IncrementPushRegistrationFailure(kind PushRegistrationError) {
	if !kind.IsValid() {
		return
	}
	m.pushFailures.WithLabelValues(kind.String()).Inc()
}

func (m *PrometheusMetrics) IncrementRouteFormatted(route Route) {
	m.routes.WithLabelValues(route.String()).Inc()
}

func (m *PrometheusMetrics) IncrementError(errorType string) {
	m.errors.WithLabelValues(errorType).Inc()
}

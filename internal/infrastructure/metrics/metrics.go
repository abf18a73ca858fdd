package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ConversionMetrics covers the currency conversion flow.
type ConversionMetrics struct {
	ConversionsTotal      *prometheus.CounterVec
	ProviderRequestsTotal *prometheus.CounterVec
	HTTPRequestsTotal     *prometheus.CounterVec
}

func NewConversionMetrics() *ConversionMetrics {
	return &ConversionMetrics{
		ConversionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wetrack_conversions_total",
			Help: "Currency conversions by outcome",
		}, []string{"status"}),
		ProviderRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wetrack_provider_requests_total",
			Help: "Outbound exchange-rate provider calls by endpoint and outcome",
		}, []string{"endpoint", "status"}),
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wetrack_http_requests_total",
			Help: "Inbound HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
	}
}

// All observers tolerate a nil receiver so usecases can run without metrics
// wired (tests, CLI tools).

func (m *ConversionMetrics) ObserveConversion(status string) {
	if m == nil {
		return
	}
	m.ConversionsTotal.WithLabelValues(status).Inc()
}

func (m *ConversionMetrics) ObserveProviderRequest(endpoint, status string) {
	if m == nil {
		return
	}
	m.ProviderRequestsTotal.WithLabelValues(endpoint, status).Inc()
}

func (m *ConversionMetrics) ObserveHTTPRequest(method, route, status string) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
}

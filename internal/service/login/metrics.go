package login

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds Prometheus metrics for issued authorization requests.
type Metrics struct {
	authURLs  *prometheus.CounterVec
	redirects *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance and registers it with the provided registerer.
// If registerer is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		authURLs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sociallogin",
				Name:      "auth_urls_total",
				Help:      "Total number of authorization URLs built",
			},
			[]string{"provider", "status"},
		),
		redirects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sociallogin",
				Name:      "redirects_total",
				Help:      "Total number of redirects to an authorization endpoint",
			},
			[]string{"provider"},
		),
	}

	registerer.MustRegister(m.authURLs, m.redirects)

	return m
}

// RecordAuthURL records a build attempt.
func (m *Metrics) RecordAuthURL(provider string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	m.authURLs.WithLabelValues(provider, status).Inc()
}

func (m *Metrics) RecordRedirect(provider string) {
	m.redirects.WithLabelValues(provider).Inc()
}

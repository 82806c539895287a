package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Auth
	AuthFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_failures_total",
			Help: "Rejected requests by reason",
		},
		[]string{"reason"}, // missing_token|invalid_token|expired_token|forbidden
	)

	// Domain
	MessagesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "messages_created_total",
			Help: "Total messages posted",
		},
	)
	DocumentsSynced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "documents_synced_total",
			Help: "Total documents upserted by filesystem sync",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(AuthFailures)
	prometheus.MustRegister(MessagesCreated)
	prometheus.MustRegister(DocumentsSynced)
}

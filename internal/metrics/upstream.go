package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "event_portal_upstream_request_duration_seconds",
	Help:    "Latency of requests to the events API, by operation and outcome",
	Buckets: prometheus.DefBuckets,
}, []string{"operation", "outcome"})

var registrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "event_portal_registrations_total",
	Help: "Registration form submissions, by outcome",
}, []string{"outcome"})

// ObserveUpstream matches apiclient.Observer.
func ObserveUpstream(operation, outcome string, elapsed time.Duration) {
	upstreamDuration.WithLabelValues(operation, outcome).Observe(elapsed.Seconds())
}

func CountRegistration(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}
	registrationsTotal.WithLabelValues(outcome).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "seguridad"

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Redemption outcome label values.
const (
	OutcomeRedeemed = "redeemed"
	OutcomeInvalid  = "invalid"
	OutcomeExpired  = "expired"
	OutcomeSelf     = "self"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	PushSends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_sends_total",
			Help:      "Total number of push send attempts by gateway environment and result",
		},
		[]string{"environment", "result"},
	)

	AlertsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_created_total",
			Help:      "Total number of stored alert events",
		},
		[]string{"kind"}, // "enter" or "exit"
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Total number of alert event publish attempts by provider and result",
		},
		[]string{"provider", "result"},
	)

	InvitationRedemptions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invitation_redemptions_total",
			Help:      "Total number of invitation redemption attempts by outcome",
		},
		[]string{"outcome"}, // "redeemed", "invalid", "expired", "self"
	)

	DBOpenConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_open_connections",
			Help:      "Number of established connections to PostgreSQL",
		},
	)

	DBInUseConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_in_use_connections",
			Help:      "Number of PostgreSQL connections currently in use",
		},
	)

	DBWaitCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_wait_count",
			Help:      "Total number of connections waited for",
		},
	)
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// RecordPushSend counts one push attempt.
func RecordPushSend(environment string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	PushSends.WithLabelValues(environment, result).Inc()
}

// RecordAlert counts one stored alert.
func RecordAlert(enter bool) {
	kind := "exit"
	if enter {
		kind = "enter"
	}
	AlertsCreated.WithLabelValues(kind).Inc()
}

// RecordEventPublish counts one publish attempt.
func RecordEventPublish(provider string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	EventsPublished.WithLabelValues(provider, result).Inc()
}

// RecordRedemption counts one redemption attempt.
func RecordRedemption(outcome string) {
	InvitationRedemptions.WithLabelValues(outcome).Inc()
}

// ObserveDBPool publishes connection pool statistics.
func ObserveDBPool(stats sql.DBStats) {
	DBOpenConnections.Set(float64(stats.OpenConnections))
	DBInUseConnections.Set(float64(stats.InUse))
	DBWaitCount.Set(float64(stats.WaitCount))
}

// Package metrics defines and registers all custom Prometheus metrics for
// the job-portal client. It is the single source of truth for metric names,
// labels, and help strings. Metrics are registered on the default registry
// at import time; serving them is optional and configured at startup.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// Outcome labels for RequestsTotal.
const (
	OutcomeSuccess            = "success"
	OutcomeRequestError       = "request_error"
	OutcomeSessionInvalidated = "session_invalidated"
	OutcomeNetworkError       = "network_error"
)

// Invalidation reason labels for SessionInvalidationsTotal.
const (
	ReasonExpiredToken = "expired_token"
	ReasonUnauthorized = "unauthorized"
)

// RequestsTotal counts pipeline calls by HTTP method and outcome. Calls
// short-circuited by the pre-flight check are counted with the
// session_invalidated outcome even though no request was dispatched.
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of pipeline calls, by method and outcome.",
	},
	[]string{"method", "outcome"},
)

// RequestDuration measures wall time of dispatched backend calls.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of dispatched backend requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// SessionInvalidationsTotal counts forced logouts, by reason.
var SessionInvalidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_invalidations_total",
		Help:      "Total number of forced session teardowns, by reason.",
	},
	[]string{"reason"},
)

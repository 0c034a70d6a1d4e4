// Package metrics defines and registers all custom Prometheus metrics for the
// seatgate gateway. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "seatgate"

// UpstreamRequestsTotal counts calls to the reservation API.
// Labels:
//   - method: HTTP method of the upstream call
//   - status: numeric HTTP status, or "timeout" / "error" when no response arrived
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the reservation API.",
	},
	[]string{"method", "status"},
)

// UpstreamRequestDuration measures upstream call latency end-to-end.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of reservation API calls from send to settle.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// GuardDecisionsTotal counts route guard outcomes.
// Label:
//   - decision: "allow", "login_redirect" or "landing_redirect"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard evaluations, labelled by outcome.",
	},
	[]string{"decision"},
)

// SessionEventsTotal counts session lifecycle events.
// Label:
//   - event: "login", "register", "logout", "self_heal"
var SessionEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_events_total",
		Help:      "Total number of session lifecycle events.",
	},
	[]string{"event"},
)

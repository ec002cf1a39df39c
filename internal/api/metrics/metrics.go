// Package metrics defines and registers all custom Prometheus metrics for
// the profit engine API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time and
// are exposed by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "profitengine"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// EntriesCreatedTotal counts inserted log rows.
// Label:
//   - kind: "time" or "income"
var EntriesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_created_total",
		Help:      "Total number of time/income entries created.",
	},
	[]string{"kind"},
)

// DashboardsComputedTotal counts dashboard responses.
// Label:
//   - outcome: "rows" (non-empty) or "empty"
var DashboardsComputedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboards_computed_total",
		Help:      "Total number of dashboard computations, by outcome.",
	},
	[]string{"outcome"},
)

// DashboardDuration measures a full dashboard computation: fetch,
// aggregation, and forecasting.
var DashboardDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dashboard_duration_seconds",
		Help:      "Duration of dashboard computation from fetch to response.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ThrottledRequestsTotal counts requests rejected by the login throttle.
var ThrottledRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "throttled_requests_total",
		Help:      "Total number of requests rejected by the login throttle.",
	},
)

// Package metrics defines and registers all custom Prometheus metrics for
// the Pulseboard dashboard API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry via promauto at
// package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pulseboard"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (bad credentials and disabled accounts both count as failure)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
// Label:
//   - role: the role assigned to the new account (e.g. "viewer")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by assigned role.",
	},
	[]string{"role"},
)

// AuthDeniedTotal counts requests rejected by the auth middleware chain.
// Label:
//   - reason: "unauthenticated", "disabled", or "forbidden"
var AuthDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denied_total",
		Help:      "Total number of requests rejected during authentication or authorization.",
	},
	[]string{"reason"},
)

// ── Analytics metrics ─────────────────────────────────────────────────────────

// DashboardRequestsTotal counts served dashboard payloads.
// Labels:
//   - role: the requesting user's role
//   - view: "standard" or "detailed"
var DashboardRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_requests_total",
		Help:      "Total number of dashboard payloads served, by role and view.",
	},
	[]string{"role", "view"},
)

// ReportsExportedTotal counts generated report exports.
// Label:
//   - format: requested export format ("json", "csv")
var ReportsExportedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_exported_total",
		Help:      "Total number of report exports generated, by format.",
	},
	[]string{"format"},
)

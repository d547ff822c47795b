// Package metrics defines the business Prometheus metrics of the DCH
// Learning API. HTTP request metrics come from echoprometheus; the counters
// here track what the requests achieved.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dch"

// ── Accounts ─────────────────────────────────────────────────────────────────

// AccountsRegisteredTotal counts created accounts.
// Label:
//   - role: "admin" for the bootstrap account, "user" otherwise
var AccountsRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_registered_total",
		Help:      "Total number of accounts registered, by assigned role.",
	},
	[]string{"role"},
)

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

// AdminGateDecisionsTotal counts admin gate outcomes.
// Label:
//   - result: "allowed", "unauthenticated", "unknown_account", "forbidden" or "error"
var AdminGateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_gate_decisions_total",
		Help:      "Total number of admin authorization decisions, by result.",
	},
	[]string{"result"},
)

// ── Administration ───────────────────────────────────────────────────────────

// AdminChangesTotal counts successful administrative mutations.
// Label:
//   - action: "update", "delete", "publish", "draft" or "promote"
var AdminChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_changes_total",
		Help:      "Total number of successful administrative changes, by action.",
	},
	[]string{"action"},
)

// ── Contact ──────────────────────────────────────────────────────────────────

// ContactMessagesTotal counts accepted contact submissions.
// Label:
//   - result: "stored" or "replayed"
var ContactMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact submissions accepted, by result.",
	},
	[]string{"result"},
)

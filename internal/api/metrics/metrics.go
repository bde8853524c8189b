// Package metrics defines all custom Prometheus metrics for the site API. It
// is the single source of truth for metric names, labels, and help strings.
//
// Metrics register with the default registry on package initialisation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jurists"

// ── Access control ────────────────────────────────────────────────────────────

// BootstrapAttemptsTotal counts calls to the bootstrap endpoint.
// Label:
//   - result: "initialized", "already_initialized", "anonymous" or "error"
var BootstrapAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bootstrap_attempts_total",
		Help:      "Total number of access control bootstrap attempts, by result.",
	},
	[]string{"result"},
)

// AuthzDeniedTotal counts requests rejected by the access control gate.
// Label:
//   - action: the operation that was denied (e.g. "leads:read")
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of requests denied by the access control gate.",
	},
	[]string{"action"},
)

// ── Leads ─────────────────────────────────────────────────────────────────────

// LeadsSubmittedTotal counts stored contact form submissions.
// Label:
//   - jurisdiction: the jurisdiction selected on the form
var LeadsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_submitted_total",
		Help:      "Total number of contact form submissions stored, by jurisdiction.",
	},
	[]string{"jurisdiction"},
)

// LeadsThrottledTotal counts submissions rejected by the per-client limit.
var LeadsThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_throttled_total",
		Help:      "Total number of contact form submissions rejected by rate limiting.",
	},
)

// LeadNotificationsTotal counts lead deliveries.
// Label:
//   - result: "delivered", "failed" or "dropped"
var LeadNotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lead_notifications_total",
		Help:      "Total number of lead notifications, by result.",
	},
	[]string{"result"},
)

// ── Content ───────────────────────────────────────────────────────────────────

// ContentWritesTotal counts admin content writes.
// Label:
//   - kind: "blog_article", "trending_topic", "trending_posted" or "legal_listing"
var ContentWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_writes_total",
		Help:      "Total number of content writes, by kind.",
	},
	[]string{"kind"},
)

// Package metrics defines and registers all custom Prometheus metrics for
// the fitness API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at import time via promauto;
// the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fitness"

// ── Webhook metrics ───────────────────────────────────────────────────────────

// WebhookEventsTotal counts verified webhook deliveries by outcome.
// Labels:
//   - type: the provider event kind (e.g. "user.created")
//   - result: "synced", "ignored", or "duplicate"
var WebhookEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_events_total",
		Help:      "Total number of verified webhook deliveries, by event type and result.",
	},
	[]string{"type", "result"},
)

// WebhookErrorsTotal counts rejected webhook deliveries.
// Label:
//   - reason: "not_configured", "missing_headers", "invalid_signature",
//     "malformed_payload", "sync_failed"
var WebhookErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_errors_total",
		Help:      "Total number of webhook deliveries that were rejected.",
	},
	[]string{"reason"},
)

// ── Plan metrics ──────────────────────────────────────────────────────────────

// PlansCreatedTotal counts newly created plans.
// Label:
//   - active: "true" when the new plan was installed as the active one
var PlansCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "plans_created_total",
		Help:      "Total number of fitness plans created, by requested active flag.",
	},
	[]string{"active"},
)

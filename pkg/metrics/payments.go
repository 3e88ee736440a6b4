package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// PaymentAttemptsTotal counts authorization attempts by processor result.
	PaymentAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sfp",
			Subsystem: "payments",
			Name:      "attempts_total",
			Help:      "Payment authorization attempts by outcome",
		},
		[]string{"flow", "outcome"},
	)

	// WebhookNotificationsTotal counts inbound processor notifications by
	// pipeline verdict.
	WebhookNotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sfp",
			Subsystem: "webhook",
			Name:      "notifications_total",
			Help:      "Inbound webhook notifications by verdict",
		},
		[]string{"event_code", "verdict"},
	)

	// RollbacksTotal counts compensation runs by entry point.
	RollbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sfp",
			Subsystem: "payments",
			Name:      "rollbacks_total",
			Help:      "Compensation runs by kind",
		},
		[]string{"kind"},
	)
)

func init() {
	Registry.MustRegister(PaymentAttemptsTotal, WebhookNotificationsTotal, RollbacksTotal)
}

// Package metrics provides Prometheus metrics for trigger processing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	MessagesTotal          *prometheus.CounterVec // Trigger messages by outcome (success, failure, skipped)
	DeliveriesTotal        *prometheus.CounterVec // Trigger deliveries by action and outcome
	UnknownActionsTotal    *prometheus.CounterVec // Triggers with an unsupported action
	MatchesPerMessage      prometheus.Histogram
	MessageDurationSeconds prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		MessagesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "watchdog_trigger_messages_total",
			Help: "Total trigger messages processed by outcome",
		}, []string{"outcome"}),
		DeliveriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "watchdog_trigger_deliveries_total",
			Help: "Total trigger deliveries by action and outcome",
		}, []string{"action", "outcome"}),
		UnknownActionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "watchdog_trigger_unknown_actions_total",
			Help: "Total triggers skipped because their action is not supported",
		}, []string{"action"}),
		MatchesPerMessage: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "watchdog_trigger_matches_per_message",
			Help:    "Number of matched triggers per message",
			Buckets: []float64{0, 1, 2, 5, 10, 25},
		}),
		MessageDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "watchdog_trigger_message_duration_seconds",
			Help:    "Time spent handling a trigger message",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) RecordMessage(outcome string) {
	m.MessagesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordDelivery(action, outcome string) {
	m.DeliveriesTotal.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) RecordUnknownAction(action string) {
	m.UnknownActionsTotal.WithLabelValues(action).Inc()
}

func (m *Metrics) ObserveMatches(n int) {
	m.MatchesPerMessage.Observe(float64(n))
}

func (m *Metrics) ObserveDuration(seconds float64) {
	m.MessageDurationSeconds.Observe(seconds)
}

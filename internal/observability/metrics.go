package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "monsuivi_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// VotesCast counts accepted votes by value.
	VotesCast = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "monsuivi_votes_cast_total",
		Help: "Total number of accepted forum votes by value",
	}, []string{"value"})

	// ModerationDecisions counts moderation actions by outcome.
	ModerationDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "monsuivi_moderation_decisions_total",
		Help: "Total number of moderation decisions by outcome",
	}, []string{"outcome"})

	// CommentsCreated counts created forum comments.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monsuivi_comments_created_total",
		Help: "Total number of forum comments created",
	})

	// RemindersGenerated counts reminders produced by the sweep, by kind.
	RemindersGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "monsuivi_reminders_generated_total",
		Help: "Total number of care reminders generated by kind",
	}, []string{"kind"})

	// DiagnosisResults counts photo diagnoses by verdict.
	DiagnosisResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "monsuivi_diagnosis_results_total",
		Help: "Total number of photo diagnoses by verdict",
	}, []string{"status"})

	// ActiveWebSockets tracks currently open websocket connections.
	ActiveWebSockets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "monsuivi_active_websockets",
		Help: "Number of currently active websocket connections",
	})

	// WebSocketDrops counts realtime messages dropped on backpressure.
	WebSocketDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "monsuivi_websocket_drops_total",
		Help: "Total number of websocket messages dropped by reason",
	}, []string{"reason"})
)

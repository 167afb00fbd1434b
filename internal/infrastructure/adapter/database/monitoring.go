package database

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transaction outcomes recorded by TransactionMetrics
const (
	OutcomeCommitted          = "committed"
	OutcomeRolledBack         = "rolled_back"
	OutcomeUnexpectedRollback = "unexpected_rollback"
	OutcomeFailed             = "failed"
)

// TransactionMetrics exports transaction manager activity to prometheus
type TransactionMetrics struct {
	begun    *prometheus.CounterVec
	finished *prometheus.CounterVec
	active   prometheus.Gauge
	duration *prometheus.HistogramVec
}

// NewTransactionMetrics registers the transaction collectors on reg.
// A nil reg falls back to the default registerer.
func NewTransactionMetrics(reg prometheus.Registerer) *TransactionMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &TransactionMetrics{
		begun: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "user_leveling",
			Subsystem: "db",
			Name:      "transactions_begun_total",
			Help:      "Physical transactions and savepoints begun, by propagation.",
		}, []string{"propagation", "kind"}),
		finished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "user_leveling",
			Subsystem: "db",
			Name:      "transactions_finished_total",
			Help:      "Physical transactions finished, by propagation and outcome.",
		}, []string{"propagation", "outcome"}),
		active: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "user_leveling",
			Subsystem: "db",
			Name:      "transactions_active",
			Help:      "Physical transactions currently open.",
		}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "user_leveling",
			Subsystem: "db",
			Name:      "transaction_duration_seconds",
			Help:      "Time between begin and completion of physical transactions.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"outcome"}),
	}
}

// ObserveBegin records a new physical transaction
func (m *TransactionMetrics) ObserveBegin(propagation string) {
	if m == nil {
		return
	}
	m.begun.WithLabelValues(propagation, "transaction").Inc()
	m.active.Inc()
}

// ObserveSavepoint records a savepoint created for a nested scope
func (m *TransactionMetrics) ObserveSavepoint(propagation string) {
	if m == nil {
		return
	}
	m.begun.WithLabelValues(propagation, "savepoint").Inc()
}

// ObserveCompletion records the end of a physical transaction
func (m *TransactionMetrics) ObserveCompletion(propagation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.finished.WithLabelValues(propagation, outcome).Inc()
	m.active.Dec()
	m.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

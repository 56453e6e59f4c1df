// Package metrics holds the prometheus instruments for choice operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation labels
const (
	OperationList    = "list"
	OperationGet     = "get"
	OperationResolve = "resolve"
	OperationUndo    = "undo"
	OperationCanUndo = "can_undo"
	OperationSummary = "summary"
)

// Result labels
const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	// operationDuration tracks the latency of orchestrator operations.
	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_choice_operation_duration_seconds",
		Help:    "Histogram of choice operation latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// operationsTotal counts operations by decision type and outcome.
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_choice_operations_total",
		Help: "Total number of choice operations",
	}, []string{"operation", "type", "result"})

	// pendingDecisions counts pending decisions returned by list calls.
	pendingDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_choice_pending_listed_total",
		Help: "Total number of pending decisions returned by list calls",
	}, []string{"type"})

	// transactionRetries counts optimistic transaction retries on the character store.
	transactionRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_character_transaction_retries_total",
		Help: "Total number of character transaction retries after a watched key changed",
	})
)

// RecordOperation records the latency and outcome of one choice operation.
// decisionType may be empty for operations that span every type.
func RecordOperation(operation, decisionType string, duration time.Duration, err error) {
	operationDuration.WithLabelValues(operation).Observe(duration.Seconds())

	result := ResultOK
	if err != nil {
		result = ResultError
	}
	operationsTotal.WithLabelValues(operation, decisionType, result).Inc()
}

// RecordPending adds the number of pending decisions listed for a type
func RecordPending(decisionType string, count int) {
	pendingDecisions.WithLabelValues(decisionType).Add(float64(count))
}

// RecordTransactionRetry counts one optimistic transaction retry
func RecordTransactionRetry() {
	transactionRetries.Inc()
}

package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// LedgerMetrics records ledger and loan operation metrics against a
// prometheus registerer
type LedgerMetrics struct {
	ledgerOperations *prometheus.CounterVec
	ledgerAmounts    *prometheus.HistogramVec
	repayments       *prometheus.CounterVec
	accruals         prometheus.Counter
}

// NewLedgerMetrics creates a metrics recorder registered on reg. Tests pass
// a fresh registry so repeated construction does not collide.
func NewLedgerMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &LedgerMetrics{
		ledgerOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger operations by outcome",
			},
			[]string{"operation", "status"},
		),
		ledgerAmounts: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_operation_amount",
				Help:    "Monetary amount moved per ledger operation",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"operation"},
		),
		repayments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loan_repayments_total",
				Help: "Total number of loan repayments by outcome",
			},
			[]string{"status"},
		),
		accruals: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "loan_interest_accruals_total",
				Help: "Total number of interest accrual runs",
			},
		),
	}
}

// RecordLedgerOperation counts one ledger operation outcome
func (m *LedgerMetrics) RecordLedgerOperation(operation, status string) {
	m.ledgerOperations.WithLabelValues(operation, status).Inc()
}

// ObserveLedgerAmount records the amount moved by a successful operation
func (m *LedgerMetrics) ObserveLedgerAmount(operation string, amount decimal.Decimal) {
	f, _ := amount.Float64()
	m.ledgerAmounts.WithLabelValues(operation).Observe(f)
}

// RecordRepayment counts one repayment outcome
func (m *LedgerMetrics) RecordRepayment(status string) {
	m.repayments.WithLabelValues(status).Inc()
}

// RecordAccrual counts one accrual run
func (m *LedgerMetrics) RecordAccrual() {
	m.accruals.Inc()
}

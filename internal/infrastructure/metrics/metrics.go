package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Journal metrics
	TransactionsCreated prometheus.Counter
	TransactionsDeleted *prometheus.CounterVec
	EntriesRecorded     prometheus.Counter
	BalanceChecks       *prometheus.CounterVec

	// Invoice metrics
	InvoicesCreated       prometheus.Counter
	InvoiceLinesWritten   *prometheus.CounterVec
	InvoiceRecalculations prometheus.Counter
	InvoiceTotalAmount    prometheus.Histogram

	// Account metrics
	AccountsCreated prometheus.Counter

	// Report metrics
	ReportRequests  *prometheus.CounterVec
	ReportCacheHits *prometheus.CounterVec
	ReportDuration  *prometheus.HistogramVec

	// Database metrics
	DBConnections prometheus.Gauge
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Journal metrics
		TransactionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_transactions_created_total",
			Help: "Total number of transactions created",
		}),
		TransactionsDeleted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_transactions_deleted_total",
				Help: "Total number of transactions deleted by mode",
			},
			[]string{"mode"},
		),
		EntriesRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_entries_recorded_total",
			Help: "Total number of journal entries recorded",
		}),
		BalanceChecks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_balance_checks_total",
				Help: "Total transaction balance checks by result",
			},
			[]string{"result"},
		),

		// Invoice metrics
		InvoicesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_invoices_created_total",
			Help: "Total number of invoices created",
		}),
		InvoiceLinesWritten: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_invoice_lines_written_total",
				Help: "Total invoice line writes by operation",
			},
			[]string{"operation"},
		),
		InvoiceRecalculations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_invoice_recalculations_total",
			Help: "Total number of invoice totals recalculations",
		}),
		InvoiceTotalAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgerbook_invoice_total_amount",
			Help:    "Invoice total amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		// Account metrics
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_accounts_created_total",
			Help: "Total number of accounts created",
		}),

		// Report metrics
		ReportRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_report_requests_total",
				Help: "Total report requests by report",
			},
			[]string{"report"},
		),
		ReportCacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_report_cache_hits_total",
				Help: "Report cache lookups by outcome",
			},
			[]string{"outcome"},
		),
		ReportDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgerbook_report_duration_seconds",
				Help:    "Report generation duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"report"},
		),

		// Database metrics
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ledgerbook_db_connections",
			Help: "Current number of database connections",
		}),
	}
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Candidate outcomes used as the "outcome" label.
const (
	OutcomeAccepted  = "accepted"
	OutcomeDuplicate = "duplicate"
	OutcomeRejected  = "rejected"
)

type Metrics struct {
	// Acceptance
	CandidatesTotal *prometheus.CounterVec

	// Audit trail
	AuditEntriesWritten prometheus.Counter
	AuditWriteFailures  prometheus.Counter
	AuditPruneFailures  prometheus.Counter
	AuditDropped        prometheus.Counter

	// Integrity checks
	IntegrityChecksTotal *prometheus.CounterVec
	IntegrityInvalid     prometheus.Gauge

	// Merchant directory
	DirectoryFailures prometheus.Counter
}

// NewMetrics registers the engine metrics with reg. Tests pass a fresh registry so
// repeated construction does not collide with the default one.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CandidatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txnintegrity_candidates_total",
				Help: "Candidate transactions by acceptance outcome",
			},
			[]string{"outcome"},
		),
		AuditEntriesWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "txnintegrity_audit_entries_written_total",
			Help: "Change log entries persisted",
		}),
		AuditWriteFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "txnintegrity_audit_write_failures_total",
			Help: "Change log batches that failed to persist",
		}),
		AuditPruneFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "txnintegrity_audit_prune_failures_total",
			Help: "Retention prunes that failed",
		}),
		AuditDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "txnintegrity_audit_dropped_total",
			Help: "Change log batches dropped because the queue was full or stopped",
		}),
		IntegrityChecksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txnintegrity_integrity_checks_total",
				Help: "Integrity checks by verdict",
			},
			[]string{"verdict"},
		),
		IntegrityInvalid: factory.NewGauge(prometheus.GaugeOpts{
			Name: "txnintegrity_integrity_invalid_records",
			Help: "Invalid records found by the most recent integrity check",
		}),
		DirectoryFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "txnintegrity_merchant_directory_failures_total",
			Help: "Merchant directory reads that failed and fell back to raw names",
		}),
	}
}

// NewNop returns metrics bound to a private registry, for callers that do not export them.
func NewNop() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

func (m *Metrics) CandidateOutcome(outcome string) {
	m.CandidatesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IntegrityVerdict(passed bool, invalid int) {
	verdict := "pass"
	if !passed {
		verdict = "fail"
	}
	m.IntegrityChecksTotal.WithLabelValues(verdict).Inc()
	m.IntegrityInvalid.Set(float64(invalid))
}

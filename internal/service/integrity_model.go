package service

import (
	"errors"
	"time"

	"github.com/carson-networks/txn-integrity/internal/ledger"
	"github.com/carson-networks/txn-integrity/internal/metrics"
	"github.com/carson-networks/txn-integrity/internal/validator"
)

var (
	ErrNotFound             = ledger.ErrNotFound
	ErrDuplicateFingerprint = ledger.ErrDuplicateFingerprint

	// ErrInvalidTransaction is returned when an edit would store a record that breaks an
	// invariant. The accompanying validator.Result lists the reasons.
	ErrInvalidTransaction = errors.New("transaction failed validation")
)

// Outcome is how an accepted-candidate call ended.
type Outcome string

const (
	OutcomeAccepted  Outcome = "ACCEPTED"
	OutcomeDuplicate Outcome = "DUPLICATE"
	OutcomeRejected  Outcome = "REJECTED"
)

func (o Outcome) metricLabel() string {
	switch o {
	case OutcomeAccepted:
		return metrics.OutcomeAccepted
	case OutcomeDuplicate:
		return metrics.OutcomeDuplicate
	default:
		return metrics.OutcomeRejected
	}
}

// AcceptResult describes one candidate. Transaction is the stored record and is only set
// when the candidate was accepted. Validation is empty for duplicates, which are
// discarded before validation runs.
type AcceptResult struct {
	Outcome     Outcome
	Transaction *ledger.Transaction
	Validation  validator.Result
}

// IntegrityReport is the structured summary of a batch validation run.
type IntegrityReport struct {
	Reason    string    `json:"reason"`
	Passed    bool      `json:"passed"`
	Total     int       `json:"total"`
	Invalid   int       `json:"invalid"`
	Errors    []string  `json:"errors"`
	Warnings  []string  `json:"warnings"`
	CheckedAt time.Time `json:"checkedAt"`
}

package validator

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/carson-networks/txn-integrity/internal/ledger"
)

const (
	futureTolerance = time.Hour
	maxRecordAge    = 10 * 365 * 24 * time.Hour
)

type severity int

const (
	severityError severity = iota
	severityWarning
)

// rule is one consistency check. check returns a message when the rule is violated.
type rule struct {
	name     string
	severity severity
	check    func(tx *ledger.Transaction, now time.Time) (string, bool)
}

var rules = []rule{
	{"amount.negative", severityError, func(tx *ledger.Transaction, _ time.Time) (string, bool) {
		if tx.Amount < 0 {
			return fmt.Sprintf("amount must be non-negative, got %v", tx.Amount), true
		}
		return "", false
	}},
	{"amount.finite", severityError, func(tx *ledger.Transaction, _ time.Time) (string, bool) {
		if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
			return fmt.Sprintf("amount must be finite, got %v", tx.Amount), true
		}
		return "", false
	}},
	{"timestamp.positive", severityError, func(tx *ledger.Transaction, _ time.Time) (string, bool) {
		if tx.Timestamp <= 0 {
			return fmt.Sprintf("timestamp must be positive, got %d", tx.Timestamp), true
		}
		return "", false
	}},
	{"enum.transactionType", severityError, func(tx *ledger.Transaction, _ time.Time) (string, bool) {
		return invalidEnum("transaction type", string(tx.TransactionType), tx.TransactionType.Valid())
	}},
	{"enum.paymentMode", severityError, func(tx *ledger.Transaction, _ time.Time) (string, bool) {
		return invalidEnum("payment mode", string(tx.PaymentMode), tx.PaymentMode.Valid())
	}},
	{"enum.sourceType", severityError, func(tx *ledger.Transaction, _ time.Time) (string, bool) {
		return invalidEnum("source type", string(tx.SourceType), tx.SourceType.Valid())
	}},
	{"enum.entryType", severityError, func(tx *ledger.Transaction, _ time.Time) (string, bool) {
		return invalidEnum("entry type", string(tx.EntryType), tx.EntryType.Valid())
	}},
	{"enum.status", severityError, func(tx *ledger.Transaction, _ time.Time) (string, bool) {
		return invalidEnum("status", string(tx.Status), tx.Status.Valid())
	}},
	{"score.confidence", severityError, func(tx *ledger.Transaction, _ time.Time) (string, bool) {
		if !inUnitRange(tx.ConfidenceScore) {
			return fmt.Sprintf("confidence score must be within [0.0, 1.0], got %v", tx.ConfidenceScore), true
		}
		return "", false
	}},
	{"score.senderTrust", severityError, func(tx *ledger.Transaction, _ time.Time) (string, bool) {
		if tx.SenderTrustScore != nil && !inUnitRange(*tx.SenderTrustScore) {
			return fmt.Sprintf("sender trust score must be within [0.0, 1.0], got %v", *tx.SenderTrustScore), true
		}
		return "", false
	}},
	{"approval.confirmedUnapproved", severityError, func(tx *ledger.Transaction, _ time.Time) (string, bool) {
		if !tx.IsApproved && tx.Status == ledger.StatusConfirmed {
			return "transaction cannot be CONFIRMED while unapproved", true
		}
		return "", false
	}},
	{"version.schema", severityError, func(tx *ledger.Transaction, _ time.Time) (string, bool) {
		if tx.SchemaVersion < 1 {
			return fmt.Sprintf("schema version must be >= 1, got %d", tx.SchemaVersion), true
		}
		return "", false
	}},
	{"version.parser", severityError, func(tx *ledger.Transaction, _ time.Time) (string, bool) {
		if tx.ParserVersion < 1 {
			return fmt.Sprintf("parser version must be >= 1, got %d", tx.ParserVersion), true
		}
		return "", false
	}},
	{"timestamps.ordering", severityError, func(tx *ledger.Transaction, _ time.Time) (string, bool) {
		if tx.CreatedAt > tx.UpdatedAt {
			return fmt.Sprintf("createdAt (%d) is after updatedAt (%d)", tx.CreatedAt, tx.UpdatedAt), true
		}
		return "", false
	}},
	{"timestamp.future", severityWarning, func(tx *ledger.Transaction, now time.Time) (string, bool) {
		if tx.Timestamp > 0 && tx.Timestamp > now.Add(futureTolerance).UnixMilli() {
			return "timestamp is more than 1 hour in the future", true
		}
		return "", false
	}},
	{"timestamp.old", severityWarning, func(tx *ledger.Transaction, now time.Time) (string, bool) {
		if tx.Timestamp > 0 && tx.Timestamp < now.Add(-maxRecordAge).UnixMilli() {
			return "timestamp is more than 10 years in the past", true
		}
		return "", false
	}},
	{"merchant.blank", severityWarning, func(tx *ledger.Transaction, _ time.Time) (string, bool) {
		if strings.TrimSpace(tx.Merchant) == "" && !tx.Category.IsIgnore() {
			return "merchant is blank", true
		}
		return "", false
	}},
	{"category.missingOnApproved", severityWarning, func(tx *ledger.Transaction, _ time.Time) (string, bool) {
		if _, ok := tx.Category.Name(); tx.IsApproved && !ok {
			return "approved transaction has no category", true
		}
		return "", false
	}},
}

// Result is the outcome of validating one transaction. Errors block acceptance,
// warnings do not.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validator checks transactions against the invariant rule set. It holds no mutable
// state and is safe for concurrent use.
type Validator struct {
	Now func() time.Time
}

// New returns a Validator that evaluates time rules against the wall clock.
func New() *Validator {
	return &Validator{Now: time.Now}
}

// Validate runs every rule against tx.
func (v *Validator) Validate(tx *ledger.Transaction) Result {
	result := Result{Errors: []string{}, Warnings: []string{}}
	if tx == nil {
		result.Errors = append(result.Errors, "transaction is nil")
		return result
	}

	now := v.now()
	for _, r := range rules {
		msg, violated := r.check(tx, now)
		if !violated {
			continue
		}
		if r.severity == severityError {
			result.Errors = append(result.Errors, msg)
		} else {
			result.Warnings = append(result.Warnings, msg)
		}
	}
	result.Valid = len(result.Errors) == 0
	return result
}

func (v *Validator) now() time.Time {
	if v.Now == nil {
		return time.Now()
	}
	return v.Now()
}

func invalidEnum(name, value string, valid bool) (string, bool) {
	if valid {
		return "", false
	}
	return fmt.Sprintf("invalid %s %q", name, value), true
}

// inUnitRange is false for NaN as well as out-of-range values.
func inUnitRange(f float64) bool {
	return f >= 0.0 && f <= 1.0
}

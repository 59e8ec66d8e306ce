package audit

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/txn-integrity/internal/ledger"
)

// trackedField pairs a change-log field name with the serialised value read from a
// transaction. A nil value means the field is absent.
type trackedField struct {
	name  string
	value func(tx *ledger.Transaction) *string
}

// trackedFields is the exact set of fields the audit trail compares, in log order.
var trackedFields = []trackedField{
	{ledger.FieldAmount, func(tx *ledger.Transaction) *string { return formatFloat(tx.Amount) }},
	{ledger.FieldMerchant, func(tx *ledger.Transaction) *string { return nonBlank(tx.Merchant) }},
	{ledger.FieldCategory, func(tx *ledger.Transaction) *string {
		if name, ok := tx.Category.Name(); ok {
			return &name
		}
		return nil
	}},
	{ledger.FieldTransactionType, func(tx *ledger.Transaction) *string { return nonBlank(string(tx.TransactionType)) }},
	{ledger.FieldPaymentMode, func(tx *ledger.Transaction) *string { return nonBlank(string(tx.PaymentMode)) }},
	{ledger.FieldStatus, func(tx *ledger.Transaction) *string { return nonBlank(string(tx.Status)) }},
	{ledger.FieldIsApproved, func(tx *ledger.Transaction) *string {
		v := strconv.FormatBool(tx.IsApproved)
		return &v
	}},
	{ledger.FieldNotes, func(tx *ledger.Transaction) *string {
		if tx.Notes == nil {
			return nil
		}
		v := *tx.Notes
		return &v
	}},
	{ledger.FieldConfidenceScore, func(tx *ledger.Transaction) *string { return formatFloat(tx.ConfidenceScore) }},
}

// Diff computes the change entries between two states of the same transaction. With a
// nil old state every present tracked field of next is reported as created. Entries
// carry no ID; the logger assigns one when it enqueues them.
func Diff(old, next *ledger.Transaction, source ledger.ChangeSource, changedAt int64) []ledger.ChangeEntry {
	if next == nil {
		return nil
	}

	var entries []ledger.ChangeEntry
	for _, f := range trackedFields {
		newValue := f.value(next)
		var oldValue *string
		if old != nil {
			oldValue = f.value(old)
			if equalValues(oldValue, newValue) {
				continue
			}
		} else if newValue == nil {
			continue
		}

		entries = append(entries, ledger.ChangeEntry{
			TransactionID: next.ID,
			Field:         f.name,
			OldValue:      oldValue,
			NewValue:      newValue,
			ChangedAt:     changedAt,
			Source:        source,
		})
	}
	return entries
}

// TrackedFieldNames returns the compared field names in log order.
func TrackedFieldNames() []string {
	names := make([]string, len(trackedFields))
	for i, f := range trackedFields {
		names[i] = f.name
	}
	return names
}

func equalValues(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// formatFloat renders a float as its shortest exact decimal text. decimal cannot
// represent NaN or infinities, so those keep their strconv spelling.
func formatFloat(f float64) *string {
	var v string
	if math.IsNaN(f) || math.IsInf(f, 0) {
		v = strconv.FormatFloat(f, 'f', -1, 64)
	} else {
		v = decimal.NewFromFloat(f).String()
	}
	return &v
}

func nonBlank(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

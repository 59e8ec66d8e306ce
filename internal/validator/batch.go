package validator

import (
	"fmt"

	"github.com/carson-networks/txn-integrity/internal/ledger"
)

// RecordResult is the itemized outcome for one record in a batch.
type RecordResult struct {
	TransactionID int64
	Result
}

// BatchResult aggregates Validate over a set of records. Errors and Warnings hold the
// flattened, id-prefixed messages; Records holds the groups for every record that
// produced at least one message.
type BatchResult struct {
	Valid    bool
	Total    int
	Invalid  int
	Errors   []string
	Warnings []string
	Records  []RecordResult
}

// ValidateAll validates every record. When any record is invalid the first error line
// is a summary of how many records failed out of the total.
func (v *Validator) ValidateAll(txs []*ledger.Transaction) BatchResult {
	batch := BatchResult{
		Total:    len(txs),
		Errors:   []string{},
		Warnings: []string{},
	}

	var itemized []string
	for _, tx := range txs {
		res := v.Validate(tx)
		var id int64
		if tx != nil {
			id = tx.ID
		}
		if !res.Valid {
			batch.Invalid++
		}
		if len(res.Errors) == 0 && len(res.Warnings) == 0 {
			continue
		}
		batch.Records = append(batch.Records, RecordResult{TransactionID: id, Result: res})
		for _, e := range res.Errors {
			itemized = append(itemized, prefix(id, e))
		}
		for _, w := range res.Warnings {
			batch.Warnings = append(batch.Warnings, prefix(id, w))
		}
	}

	if batch.Invalid > 0 {
		batch.Errors = append(batch.Errors, fmt.Sprintf("%d of %d transactions failed validation", batch.Invalid, batch.Total))
	}
	batch.Errors = append(batch.Errors, itemized...)
	batch.Valid = batch.Invalid == 0
	return batch
}

// InvalidRecords returns only the record groups that carry errors.
func (b BatchResult) InvalidRecords() []RecordResult {
	var out []RecordResult
	for _, r := range b.Records {
		if !r.Valid {
			out = append(out, r)
		}
	}
	return out
}

func prefix(id int64, msg string) string {
	return fmt.Sprintf("Transaction %d: %s", id, msg)
}

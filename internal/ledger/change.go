package ledger

import "github.com/gofrs/uuid/v5"

// Field names recorded in change entries.
const (
	FieldAmount           = "amount"
	FieldMerchant         = "merchant"
	FieldCategory         = "category"
	FieldTransactionType  = "transactionType"
	FieldPaymentMode      = "paymentMode"
	FieldStatus           = "status"
	FieldIsApproved       = "isApproved"
	FieldNotes            = "notes"
	FieldConfidenceScore  = "confidenceScore"
	FieldMerchantOverride = "merchantOverride"
)

// ChangeEntry is one append-only audit row describing a single field mutation.
// TransactionID references the transaction; the entry does not own it.
type ChangeEntry struct {
	ID            uuid.UUID
	TransactionID int64
	Field         string
	OldValue      *string
	NewValue      *string
	ChangedAt     int64 // epoch millis
	Source        ChangeSource
}

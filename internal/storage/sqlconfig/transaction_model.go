package sqlconfig

import (
	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/txn-integrity/internal/ledger"
)

const transactionsTable = "transactions"

var transactionColumns = []string{
	"timestamp",
	"amount",
	"merchant",
	"merchant_override",
	"category_legacy",
	"category_id",
	"category_name_snapshot",
	"account_type",
	"transaction_type",
	"payment_mode",
	"source_type",
	"entry_type",
	"status",
	"confidence_score",
	"is_approved",
	"content_hash",
	"schema_version",
	"parser_version",
	"sender_id",
	"sender_trust_score",
	"created_at",
	"updated_at",
	"notes",
	"trip_id",
}

// TransactionRow is one row of the transactions table. Enum columns are read as plain
// text so an unknown stored value reaches the validator instead of failing the scan.
type TransactionRow struct {
	ID                   int64             `db:"id"`
	Timestamp            int64             `db:"timestamp"`
	Amount               float64           `db:"amount"`
	Merchant             string            `db:"merchant"`
	MerchantOverride     null.Val[string]  `db:"merchant_override"`
	CategoryLegacy       null.Val[string]  `db:"category_legacy"`
	CategoryID           null.Val[string]  `db:"category_id"`
	CategoryNameSnapshot null.Val[string]  `db:"category_name_snapshot"`
	AccountType          null.Val[string]  `db:"account_type"`
	TransactionType      string            `db:"transaction_type"`
	PaymentMode          string            `db:"payment_mode"`
	SourceType           string            `db:"source_type"`
	EntryType            string            `db:"entry_type"`
	Status               string            `db:"status"`
	ConfidenceScore      float64           `db:"confidence_score"`
	IsApproved           bool              `db:"is_approved"`
	ContentHash          null.Val[string]  `db:"content_hash"`
	SchemaVersion        int               `db:"schema_version"`
	ParserVersion        int               `db:"parser_version"`
	SenderID             null.Val[string]  `db:"sender_id"`
	SenderTrustScore     null.Val[float64] `db:"sender_trust_score"`
	CreatedAt            int64             `db:"created_at"`
	UpdatedAt            int64             `db:"updated_at"`
	Notes                null.Val[string]  `db:"notes"`
	TripID               null.Val[int64]   `db:"trip_id"`
}

func rowToTransaction(row TransactionRow) *ledger.Transaction {
	tx := &ledger.Transaction{
		ID:               row.ID,
		Timestamp:        row.Timestamp,
		Amount:           row.Amount,
		Merchant:         row.Merchant,
		MerchantOverride: row.MerchantOverride.Ptr(),
		Category: ledger.CategoryRef{
			Legacy:       row.CategoryLegacy.Ptr(),
			NameSnapshot: row.CategoryNameSnapshot.Ptr(),
		},
		AccountType:      row.AccountType.Ptr(),
		TransactionType:  ledger.TransactionType(row.TransactionType),
		PaymentMode:      ledger.PaymentMode(row.PaymentMode),
		SourceType:       ledger.SourceType(row.SourceType),
		EntryType:        ledger.EntryType(row.EntryType),
		Status:           ledger.Status(row.Status),
		ConfidenceScore:  row.ConfidenceScore,
		IsApproved:       row.IsApproved,
		ContentHash:      row.ContentHash.Ptr(),
		SchemaVersion:    row.SchemaVersion,
		ParserVersion:    row.ParserVersion,
		SenderID:         row.SenderID.Ptr(),
		SenderTrustScore: row.SenderTrustScore.Ptr(),
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
		Notes:            row.Notes.Ptr(),
		TripID:           row.TripID.Ptr(),
	}

	if raw, ok := row.CategoryID.Get(); ok {
		if id, err := uuid.FromString(raw); err == nil {
			tx.Category.ID = &id
		}
	}

	return tx
}

// transactionValues returns the column values in transactionColumns order.
func transactionValues(tx *ledger.Transaction) []any {
	var categoryID null.Val[string]
	if tx.Category.ID != nil {
		categoryID = null.From(tx.Category.ID.String())
	}

	return []any{
		tx.Timestamp,
		tx.Amount,
		tx.Merchant,
		null.FromPtr(tx.MerchantOverride),
		null.FromPtr(tx.Category.Legacy),
		categoryID,
		null.FromPtr(tx.Category.NameSnapshot),
		null.FromPtr(tx.AccountType),
		string(tx.TransactionType),
		string(tx.PaymentMode),
		string(tx.SourceType),
		string(tx.EntryType),
		string(tx.Status),
		tx.ConfidenceScore,
		tx.IsApproved,
		contentHash(tx),
		tx.SchemaVersion,
		tx.ParserVersion,
		null.FromPtr(tx.SenderID),
		null.FromPtr(tx.SenderTrustScore),
		tx.CreatedAt,
		tx.UpdatedAt,
		null.FromPtr(tx.Notes),
		null.FromPtr(tx.TripID),
	}
}

// contentHash stores blank hashes as NULL so they stay outside the unique index.
func contentHash(tx *ledger.Transaction) null.Val[string] {
	if ledger.IsBlank(tx.ContentHash) {
		return null.Val[string]{}
	}
	return null.From(*tx.ContentHash)
}

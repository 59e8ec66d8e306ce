package transaction

import (
	"github.com/carson-networks/txn-integrity/internal/ledger"
)

// Transaction is the API response model for a stored transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID               int64    `json:"id" doc:"Transaction id"`
	Timestamp        int64    `json:"timestamp" doc:"Epoch milliseconds of the underlying event"`
	Amount           float64  `json:"amount" doc:"Non-negative amount"`
	Merchant         string   `json:"merchant" doc:"Raw parsed merchant"`
	DisplayName      string   `json:"displayName,omitempty" doc:"Resolved merchant display name"`
	MerchantOverride *string  `json:"merchantOverride,omitempty" doc:"User-set display name"`
	Category         *string  `json:"category,omitempty" doc:"Category name, snapshot before legacy"`
	CategoryID       *string  `json:"categoryId,omitempty" doc:"Stable category UUID"`
	AccountType      *string  `json:"accountType,omitempty"`
	TransactionType  string   `json:"transactionType"`
	PaymentMode      string   `json:"paymentMode"`
	SourceType       string   `json:"sourceType"`
	EntryType        string   `json:"entryType"`
	Status           string   `json:"status"`
	ConfidenceScore  float64  `json:"confidenceScore"`
	IsApproved       bool     `json:"isApproved"`
	ContentHash      *string  `json:"contentHash,omitempty"`
	SchemaVersion    int      `json:"schemaVersion"`
	ParserVersion    int      `json:"parserVersion"`
	SenderID         *string  `json:"senderId,omitempty"`
	SenderTrustScore *float64 `json:"senderTrustScore,omitempty"`
	CreatedAt        int64    `json:"createdAt" doc:"Epoch milliseconds"`
	UpdatedAt        int64    `json:"updatedAt" doc:"Epoch milliseconds"`
	Notes            *string  `json:"notes,omitempty"`
	TripID           *int64   `json:"tripId,omitempty"`
}

// ChangeEntry is the API response model for one audit log entry.
type ChangeEntry struct {
	ID            string  `json:"id" doc:"Change entry UUID"`
	TransactionID int64   `json:"transactionId"`
	Field         string  `json:"field"`
	OldValue      *string `json:"oldValue,omitempty"`
	NewValue      *string `json:"newValue,omitempty"`
	ChangedAt     int64   `json:"changedAt" doc:"Epoch milliseconds"`
	Source        string  `json:"source"`
}

func toAPITransaction(tx *ledger.Transaction, displayName string) Transaction {
	out := Transaction{
		ID:               tx.ID,
		Timestamp:        tx.Timestamp,
		Amount:           tx.Amount,
		Merchant:         tx.Merchant,
		DisplayName:      displayName,
		MerchantOverride: tx.MerchantOverride,
		AccountType:      tx.AccountType,
		TransactionType:  string(tx.TransactionType),
		PaymentMode:      string(tx.PaymentMode),
		SourceType:       string(tx.SourceType),
		EntryType:        string(tx.EntryType),
		Status:           string(tx.Status),
		ConfidenceScore:  tx.ConfidenceScore,
		IsApproved:       tx.IsApproved,
		ContentHash:      tx.ContentHash,
		SchemaVersion:    tx.SchemaVersion,
		ParserVersion:    tx.ParserVersion,
		SenderID:         tx.SenderID,
		SenderTrustScore: tx.SenderTrustScore,
		CreatedAt:        tx.CreatedAt,
		UpdatedAt:        tx.UpdatedAt,
		Notes:            tx.Notes,
		TripID:           tx.TripID,
	}
	if name, ok := tx.Category.Name(); ok {
		out.Category = &name
	}
	if tx.Category.ID != nil {
		id := tx.Category.ID.String()
		out.CategoryID = &id
	}
	return out
}

func toAPIChangeEntry(e ledger.ChangeEntry) ChangeEntry {
	return ChangeEntry{
		ID:            e.ID.String(),
		TransactionID: e.TransactionID,
		Field:         e.Field,
		OldValue:      e.OldValue,
		NewValue:      e.NewValue,
		ChangedAt:     e.ChangedAt,
		Source:        string(e.Source),
	}
}

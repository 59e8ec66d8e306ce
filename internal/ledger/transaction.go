package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Transaction is the canonical ledger record. ID is zero until the record store assigns
// one. The type does not enforce any invariant on its own; see the validator package.
type Transaction struct {
	ID               int64
	Timestamp        int64 // epoch millis
	Amount           float64
	Merchant         string
	MerchantOverride *string
	Category         CategoryRef
	AccountType      *string
	TransactionType  TransactionType
	PaymentMode      PaymentMode
	SourceType       SourceType
	EntryType        EntryType
	Status           Status
	ConfidenceScore  float64
	IsApproved       bool
	ContentHash      *string
	SchemaVersion    int
	ParserVersion    int
	SenderID         *string
	SenderTrustScore *float64
	CreatedAt        int64 // epoch millis
	UpdatedAt        int64 // epoch millis
	Notes            *string
	TripID           *int64
}

// Clone returns a deep copy so callers can mutate a record without touching the
// state that was handed to the audit logger.
func (t *Transaction) Clone() *Transaction {
	if t == nil {
		return nil
	}
	c := *t
	c.MerchantOverride = cloneString(t.MerchantOverride)
	c.AccountType = cloneString(t.AccountType)
	c.ContentHash = cloneString(t.ContentHash)
	c.SenderID = cloneString(t.SenderID)
	c.Notes = cloneString(t.Notes)
	c.Category = t.Category.clone()
	if t.SenderTrustScore != nil {
		v := *t.SenderTrustScore
		c.SenderTrustScore = &v
	}
	if t.TripID != nil {
		v := *t.TripID
		c.TripID = &v
	}
	return &c
}

// Fingerprint returns the content hash of raw source text. Whitespace runs are collapsed
// so the same bank message mirrored through two channels hashes identically.
func Fingerprint(rawText string) string {
	normalized := strings.Join(strings.Fields(rawText), " ")
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// IsBlank reports whether s is absent or only whitespace.
func IsBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// StringPtr is a convenience for optional text fields.
func StringPtr(s string) *string {
	return &s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

package ledger

import "fmt"

// UnknownValueError is returned when a persisted or submitted enum value is not one of
// the declared variants.
type UnknownValueError struct {
	Enum  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown %s value %q", e.Enum, e.Value)
}

// TransactionType is the direction of money movement.
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "DEBIT"
	TransactionTypeCredit TransactionType = "CREDIT"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDebit, TransactionTypeCredit:
		return true
	}
	return false
}

// ParseTransactionType converts stored text into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.Valid() {
		return "", &UnknownValueError{Enum: "transaction type", Value: s}
	}
	return t, nil
}

// PaymentMode is the rail the payment went through.
type PaymentMode string

const (
	PaymentModeUPI  PaymentMode = "UPI"
	PaymentModeCard PaymentMode = "CARD"
	PaymentModeCash PaymentMode = "CASH"
	PaymentModeBank PaymentMode = "BANK"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeUPI, PaymentModeCard, PaymentModeCash, PaymentModeBank:
		return true
	}
	return false
}

// ParsePaymentMode converts stored text into a PaymentMode.
func ParsePaymentMode(s string) (PaymentMode, error) {
	m := PaymentMode(s)
	if !m.Valid() {
		return "", &UnknownValueError{Enum: "payment mode", Value: s}
	}
	return m, nil
}

// SourceType identifies the channel a transaction was captured from.
type SourceType string

const (
	SourceTypeSMS          SourceType = "SMS"
	SourceTypeNotification SourceType = "NOTIFICATION"
	SourceTypeManual       SourceType = "MANUAL"
	SourceTypeEmail        SourceType = "EMAIL"
)

func (s SourceType) Valid() bool {
	switch s {
	case SourceTypeSMS, SourceTypeNotification, SourceTypeManual, SourceTypeEmail:
		return true
	}
	return false
}

// ParseSourceType converts stored text into a SourceType.
func ParseSourceType(s string) (SourceType, error) {
	st := SourceType(s)
	if !st.Valid() {
		return "", &UnknownValueError{Enum: "source type", Value: s}
	}
	return st, nil
}

// EntryType records who produced the current state of the record.
type EntryType string

const (
	EntryTypeAutoCaptured EntryType = "AUTO_CAPTURED"
	EntryTypeUserEntered  EntryType = "USER_ENTERED"
	EntryTypeUserModified EntryType = "USER_MODIFIED"
)

func (e EntryType) Valid() bool {
	switch e {
	case EntryTypeAutoCaptured, EntryTypeUserEntered, EntryTypeUserModified:
		return true
	}
	return false
}

// ParseEntryType converts stored text into an EntryType.
func ParseEntryType(s string) (EntryType, error) {
	e := EntryType(s)
	if !e.Valid() {
		return "", &UnknownValueError{Enum: "entry type", Value: s}
	}
	return e, nil
}

// Status is the review state of a transaction. IGNORED is the soft delete.
type Status string

const (
	StatusDetected  Status = "DETECTED"
	StatusConfirmed Status = "CONFIRMED"
	StatusModified  Status = "MODIFIED"
	StatusIgnored   Status = "IGNORED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDetected, StatusConfirmed, StatusModified, StatusIgnored:
		return true
	}
	return false
}

// ParseStatus converts stored text into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", &UnknownValueError{Enum: "status", Value: s}
	}
	return st, nil
}

// ChangeSource is the provenance tag recorded with every change entry.
type ChangeSource string

const (
	ChangeSourceUserEdit           ChangeSource = "USER_EDIT"
	ChangeSourceAutoClassification ChangeSource = "AUTO_CLASSIFICATION"
	ChangeSourceBulkUpdate         ChangeSource = "BULK_UPDATE"
	ChangeSourceMigration          ChangeSource = "MIGRATION"
	ChangeSourceParserUpdate       ChangeSource = "PARSER_UPDATE"
	ChangeSourceSystemCorrection   ChangeSource = "SYSTEM_CORRECTION"
)

func (c ChangeSource) Valid() bool {
	switch c {
	case ChangeSourceUserEdit, ChangeSourceAutoClassification, ChangeSourceBulkUpdate,
		ChangeSourceMigration, ChangeSourceParserUpdate, ChangeSourceSystemCorrection:
		return true
	}
	return false
}

// ParseChangeSource converts stored text into a ChangeSource.
func ParseChangeSource(s string) (ChangeSource, error) {
	c := ChangeSource(s)
	if !c.Valid() {
		return "", &UnknownValueError{Enum: "change source", Value: s}
	}
	return c, nil
}

package ledger

import "errors"

var (
	// ErrNotFound is returned by stores when no record has the requested id.
	ErrNotFound = errors.New("transaction not found")

	// ErrDuplicateFingerprint is returned by stores when an insert or update would
	// give two records the same content hash.
	ErrDuplicateFingerprint = errors.New("duplicate content fingerprint")
)

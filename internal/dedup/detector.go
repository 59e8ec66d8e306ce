package dedup

import (
	"context"
	"fmt"
	"strings"
)

// fingerprintLookup is the slice of the record store the detector needs.
type fingerprintLookup interface {
	ExistsByFingerprint(ctx context.Context, hash string) (bool, error)
}

// Detector answers whether a candidate's content fingerprint has already been accepted.
type Detector struct {
	store fingerprintLookup
}

// NewDetector creates a Detector backed by the given store.
func NewDetector(store fingerprintLookup) *Detector {
	return &Detector{store: store}
}

// IsDuplicate reports whether a transaction with this fingerprint already exists.
// Manual entries carry no fingerprint and are never duplicates.
func (d *Detector) IsDuplicate(ctx context.Context, fingerprint *string) (bool, error) {
	if fingerprint == nil || strings.TrimSpace(*fingerprint) == "" {
		return false, nil
	}

	exists, err := d.store.ExistsByFingerprint(ctx, *fingerprint)
	if err != nil {
		return false, fmt.Errorf("dedup: lookup fingerprint: %w", err)
	}
	return exists, nil
}

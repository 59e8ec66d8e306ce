package merchant

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/txn-integrity/internal/ledger"
	"github.com/carson-networks/txn-integrity/internal/metrics"
)

// UnknownMerchant is both the parser placeholder and the last-resort display name.
const UnknownMerchant = "Unknown"

// Alias maps a raw parsed merchant string to its managed display name.
type Alias struct {
	OriginalName string
	DisplayName  string
}

// Directory is the externally owned merchant directory. It is read-only here.
//
//go:generate mockery --name Directory --inpackage --with-expecter --filename mock_Directory.go
type Directory interface {
	Lookup(ctx context.Context, originalName string) (displayName string, found bool, err error)
	ListAll(ctx context.Context) ([]Alias, error)
}

// Resolver computes display names. It holds no state besides its collaborators for
// reporting directory failures.
type Resolver struct {
	log     *logrus.Logger
	metrics *metrics.Metrics
}

func NewResolver(log *logrus.Logger, m *metrics.Metrics) *Resolver {
	if m == nil {
		m = metrics.NewNop()
	}
	return &Resolver{log: log, metrics: m}
}

// ResolveDisplayName picks the first of: a non-blank override, the directory's display
// name for the raw merchant, the raw merchant unless blank or the placeholder, and
// finally "Unknown". An unreachable directory is skipped rather than failing.
func (r *Resolver) ResolveDisplayName(ctx context.Context, tx *ledger.Transaction, dir Directory) string {
	if name, ok := override(tx); ok {
		return name
	}

	if dir != nil && strings.TrimSpace(tx.Merchant) != "" {
		displayName, found, err := dir.Lookup(ctx, tx.Merchant)
		if err != nil {
			r.directoryFailed(err, "ResolveDisplayName")
		} else if found && strings.TrimSpace(displayName) != "" {
			return displayName
		}
	}

	return rawOrUnknown(tx)
}

// ResolveDisplayNames resolves many transactions against one directory snapshot. The
// result is keyed by transaction id and matches calling ResolveDisplayName per record.
func (r *Resolver) ResolveDisplayNames(ctx context.Context, txs []*ledger.Transaction, dir Directory) map[int64]string {
	var snapshot Snapshot
	if dir != nil {
		aliases, err := dir.ListAll(ctx)
		if err != nil {
			r.directoryFailed(err, "ResolveDisplayNames")
		} else {
			snapshot = NewSnapshot(aliases)
		}
	}

	names := make(map[int64]string, len(txs))
	for _, tx := range txs {
		names[tx.ID] = r.ResolveDisplayName(ctx, tx, snapshot)
	}
	return names
}

func (r *Resolver) directoryFailed(err error, op string) {
	r.metrics.DirectoryFailures.Inc()
	if r.log != nil {
		r.log.WithError(err).Warnf("MerchantResolver.%s.directory unavailable", op)
	}
}

func override(tx *ledger.Transaction) (string, bool) {
	if ledger.IsBlank(tx.MerchantOverride) {
		return "", false
	}
	return *tx.MerchantOverride, true
}

func rawOrUnknown(tx *ledger.Transaction) string {
	raw := strings.TrimSpace(tx.Merchant)
	if raw == "" || raw == UnknownMerchant {
		return UnknownMerchant
	}
	return tx.Merchant
}

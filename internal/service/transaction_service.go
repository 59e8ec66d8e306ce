package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/txn-integrity/internal/audit"
	"github.com/carson-networks/txn-integrity/internal/ledger"
	"github.com/carson-networks/txn-integrity/internal/merchant"
	"github.com/carson-networks/txn-integrity/internal/storage"
)

// TransactionView is a stored record paired with the name it should be shown under.
type TransactionView struct {
	Transaction *ledger.Transaction
	DisplayName string
}

// TransactionService handles the read paths.
type TransactionService struct {
	transactions storage.TransactionStore
	directory    merchant.Directory
	resolver     *merchant.Resolver
	audit        *audit.Logger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, resolver *merchant.Resolver, auditLogger *audit.Logger) *TransactionService {
	return &TransactionService{
		transactions: store.Transactions,
		directory:    store.Merchants,
		resolver:     resolver,
		audit:        auditLogger,
	}
}

// ListWithDisplayNames returns every record with its resolved display name. The merchant
// directory is read once for the whole list.
func (s *TransactionService) ListWithDisplayNames(ctx context.Context) ([]TransactionView, error) {
	txs, err := s.transactions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: list transactions: %w", err)
	}

	names := s.resolver.ResolveDisplayNames(ctx, txs, s.directory)

	views := make([]TransactionView, len(txs))
	for i, tx := range txs {
		views[i] = TransactionView{Transaction: tx, DisplayName: names[tx.ID]}
	}
	return views, nil
}

// History returns the retained change log of one record, oldest first.
func (s *TransactionService) History(ctx context.Context, id int64) ([]ledger.ChangeEntry, error) {
	if _, err := s.transactions.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.audit.History(ctx, id)
}

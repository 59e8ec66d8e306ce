package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/txn-integrity/internal/audit"
	"github.com/carson-networks/txn-integrity/internal/merchant"
	"github.com/carson-networks/txn-integrity/internal/metrics"
	"github.com/carson-networks/txn-integrity/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Integrity   *IntegrityService
	Transaction *TransactionService
}

// NewService creates a new Service with the given storage. The audit logger's
// lifecycle (Start/Stop) stays with the caller.
func NewService(store *storage.Storage, auditLogger *audit.Logger, log *logrus.Logger, m *metrics.Metrics) *Service {
	return &Service{
		Integrity:   NewIntegrityService(store, auditLogger, log, m),
		Transaction: NewTransactionService(store, merchant.NewResolver(log, m), auditLogger),
	}
}

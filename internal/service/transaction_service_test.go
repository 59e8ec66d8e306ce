package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/txn-integrity/internal/audit"
	"github.com/carson-networks/txn-integrity/internal/ledger"
	"github.com/carson-networks/txn-integrity/internal/merchant"
	"github.com/carson-networks/txn-integrity/internal/metrics"
	"github.com/carson-networks/txn-integrity/internal/storage"
	"github.com/carson-networks/txn-integrity/internal/storage/memstore"
)

func newTestService(t *testing.T, directory merchant.Directory) (*Service, *storage.Storage, *audit.Logger) {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	m := metrics.NewMetrics(prometheus.NewRegistry())
	store := storage.NewMemoryStorage(directory)

	auditLogger := audit.NewLogger(store.Changes, log, m, audit.Options{Workers: 1})
	auditLogger.Start()
	t.Cleanup(auditLogger.Stop)

	return NewService(store, auditLogger, log, m), store, auditLogger
}

func TestListWithDisplayNames(t *testing.T) {
	directory := memstore.NewMerchantTable()
	directory.Put("SWGY*ORDER", "Swiggy")
	svc, _, _ := newTestService(t, directory)
	ctx := context.Background()

	inputs := []*ledger.Transaction{candidate("a"), candidate("b"), candidate("c"), candidate("d")}
	inputs[0].Merchant = "SWGY*ORDER"
	inputs[1].Merchant = "SWGY*ORDER"
	inputs[1].MerchantOverride = ledger.StringPtr("Dinner with Sam")
	inputs[2].Merchant = "Unknown"
	for _, in := range inputs {
		res, err := svc.Integrity.AcceptCandidate(ctx, in)
		require.NoError(t, err)
		require.Equal(t, OutcomeAccepted, res.Outcome)
	}

	views, err := svc.Transaction.ListWithDisplayNames(ctx)
	require.NoError(t, err)
	require.Len(t, views, 4)

	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.DisplayName
	}
	assert.Equal(t, []string{"Swiggy", "Dinner with Sam", "Unknown", "Coffee Shop"}, names)
}

func TestListWithDisplayNames_DirectoryDown(t *testing.T) {
	directory := merchant.NewMockDirectory(t)
	directory.EXPECT().ListAll(mock.Anything).Return(nil, errors.New("directory offline")).Once()
	svc, _, _ := newTestService(t, directory)
	ctx := context.Background()

	in := candidate("a")
	in.Merchant = "SWGY*ORDER"
	_, err := svc.Integrity.AcceptCandidate(ctx, in)
	require.NoError(t, err)

	views, err := svc.Transaction.ListWithDisplayNames(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "SWGY*ORDER", views[0].DisplayName)
}

func TestListWithDisplayNames_StoreError(t *testing.T) {
	txStore := storage.NewMockTransactionStore(t)
	txStore.EXPECT().List(mock.Anything).Return(nil, errors.New("connection refused")).Once()

	svc := NewTransactionService(&storage.Storage{Transactions: txStore}, merchant.NewResolver(nil, nil), nil)
	_, err := svc.ListWithDisplayNames(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}

func TestHistory(t *testing.T) {
	svc, _, auditLogger := newTestService(t, nil)
	ctx := context.Background()

	res, err := svc.Integrity.AcceptCandidate(ctx, candidate("a"))
	require.NoError(t, err)
	_, err = svc.Integrity.SetMerchantOverride(ctx, res.Transaction.ID, ledger.StringPtr("Cafe"))
	require.NoError(t, err)
	auditLogger.Stop()

	history, err := svc.Transaction.History(ctx, res.Transaction.ID)
	require.NoError(t, err)
	require.Len(t, history, 9)
	assert.Equal(t, ledger.FieldMerchantOverride, history[8].Field)

	_, err = svc.Transaction.History(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

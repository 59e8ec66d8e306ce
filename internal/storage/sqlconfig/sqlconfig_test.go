package sqlconfig

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/txn-integrity/internal/ledger"
	"github.com/carson-networks/txn-integrity/internal/merchant"
	"github.com/carson-networks/txn-integrity/internal/storage/migrations"
)

// newTestDB starts a throwaway postgres and applies the migrations.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres integration test skipped in -short mode")
	}

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("txnintegrity"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("testpassword"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	result, err := migrations.Up(db)
	require.NoError(t, err)
	assert.Equal(t, uint(0), result.PreMigrationVersion)
	assert.Equal(t, uint(3), result.PostMigrationVersion)

	return db
}

func fullTransaction(hash string) *ledger.Transaction {
	categoryID := uuid.Must(uuid.NewV4())
	trust := 0.9
	trip := int64(12)
	return &ledger.Transaction{
		Timestamp:        1_717_243_200_000,
		Amount:           250.75,
		Merchant:         "AMZN MKTP",
		MerchantOverride: ledger.StringPtr("Amazon"),
		Category: ledger.CategoryRef{
			Legacy:       ledger.StringPtr("Shopping"),
			ID:           &categoryID,
			NameSnapshot: ledger.StringPtr("Online Shopping"),
		},
		AccountType:      ledger.StringPtr("SAVINGS"),
		TransactionType:  ledger.TransactionTypeDebit,
		PaymentMode:      ledger.PaymentModeCard,
		SourceType:       ledger.SourceTypeSMS,
		EntryType:        ledger.EntryTypeAutoCaptured,
		Status:           ledger.StatusDetected,
		ConfidenceScore:  0.8,
		ContentHash:      ledger.StringPtr(hash),
		SchemaVersion:    1,
		ParserVersion:    2,
		SenderID:         ledger.StringPtr("VM-HDFCBK"),
		SenderTrustScore: &trust,
		CreatedAt:        1_717_243_200_000,
		UpdatedAt:        1_717_243_200_000,
		Notes:            ledger.StringPtr("gift"),
		TripID:           &trip,
	}
}

func TestTransactionsTable(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	table := NewTransactionsTable(db)

	t.Run("round trip", func(t *testing.T) {
		tx := fullTransaction("hash-roundtrip")
		id, err := table.Insert(ctx, tx)
		require.NoError(t, err)

		got, err := table.FindByID(ctx, id)
		require.NoError(t, err)

		tx.ID = id
		assert.Equal(t, tx, got)
	})

	t.Run("duplicate fingerprint", func(t *testing.T) {
		_, err := table.Insert(ctx, fullTransaction("hash-dup"))
		require.NoError(t, err)

		_, err = table.Insert(ctx, fullTransaction("hash-dup"))
		assert.ErrorIs(t, err, ledger.ErrDuplicateFingerprint)

		exists, err := table.ExistsByFingerprint(ctx, "hash-dup")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("manual entries without hash", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			tx := fullTransaction("")
			tx.ContentHash = nil
			_, err := table.Insert(ctx, tx)
			require.NoError(t, err)
		}
	})

	t.Run("concurrent inserts of one fingerprint", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make([]error, 10)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = table.Insert(ctx, fullTransaction("hash-race"))
			}(i)
		}
		wg.Wait()

		inserted := 0
		for _, err := range errs {
			if err == nil {
				inserted++
			} else {
				assert.ErrorIs(t, err, ledger.ErrDuplicateFingerprint)
			}
		}
		assert.Equal(t, 1, inserted)
	})

	t.Run("update", func(t *testing.T) {
		id, err := table.Insert(ctx, fullTransaction("hash-update"))
		require.NoError(t, err)

		tx, err := table.FindByID(ctx, id)
		require.NoError(t, err)
		tx.Amount = 99
		tx.Notes = nil
		tx.Status = ledger.StatusConfirmed
		tx.IsApproved = true
		require.NoError(t, table.Update(ctx, tx))

		got, err := table.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 99.0, got.Amount)
		assert.Nil(t, got.Notes)
		assert.Equal(t, ledger.StatusConfirmed, got.Status)

		tx.ContentHash = ledger.StringPtr("hash-dup")
		assert.ErrorIs(t, table.Update(ctx, tx), ledger.ErrDuplicateFingerprint)

		tx.ID = 1 << 40
		assert.ErrorIs(t, table.Update(ctx, tx), ledger.ErrNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := table.FindByID(ctx, 1<<40)
		assert.ErrorIs(t, err, ledger.ErrNotFound)
	})

	t.Run("unknown stored enum loads", func(t *testing.T) {
		id, err := table.Insert(ctx, fullTransaction("hash-enum"))
		require.NoError(t, err)
		_, err = db.ExecContext(ctx, "UPDATE transactions SET payment_mode = 'CHEQUE' WHERE id = $1", id)
		require.NoError(t, err)

		got, err := table.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, ledger.PaymentMode("CHEQUE"), got.PaymentMode)
		assert.False(t, got.PaymentMode.Valid())
	})

	t.Run("list ordered", func(t *testing.T) {
		all, err := table.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, all)
		for i := 1; i < len(all); i++ {
			assert.Less(t, all[i-1].ID, all[i].ID)
		}
	})
}

func TestChangesTable(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	table := NewChangesTable(db)

	batch := func(txID int64, n, from int) []ledger.ChangeEntry {
		out := make([]ledger.ChangeEntry, n)
		for i := range out {
			out[i] = ledger.ChangeEntry{
				ID:            uuid.Must(uuid.NewV7()),
				TransactionID: txID,
				Field:         ledger.FieldAmount,
				OldValue:      nil,
				NewValue:      ledger.StringPtr(fmt.Sprintf("%d", from+i)),
				ChangedAt:     int64(from + i),
				Source:        ledger.ChangeSourceUserEdit,
			}
		}
		return out
	}

	require.NoError(t, table.Append(ctx, batch(1, 150, 0)))
	require.NoError(t, table.Append(ctx, batch(2, 5, 0)))
	require.NoError(t, table.Append(ctx, nil))

	require.NoError(t, table.Prune(ctx, 1, 100))

	entries, err := table.ListByTransaction(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 100)
	assert.Equal(t, "50", *entries[0].NewValue)
	assert.Equal(t, "149", *entries[99].NewValue)
	assert.Nil(t, entries[0].OldValue)
	assert.Equal(t, ledger.ChangeSourceUserEdit, entries[0].Source)

	other, err := table.ListByTransaction(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, other, 5)
}

func TestMerchantAliasesTable(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	_, err := db.ExecContext(ctx, `INSERT INTO merchant_aliases (original_name, display_name) VALUES ('SWGY', 'Swiggy'), ('AMZN', 'Amazon')`)
	require.NoError(t, err)

	table := NewMerchantAliasesTable(db)

	name, found, err := table.Lookup(ctx, "SWGY")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Swiggy", name)

	_, found, err = table.Lookup(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	all, err := table.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []merchant.Alias{
		{OriginalName: "AMZN", DisplayName: "Amazon"},
		{OriginalName: "SWGY", DisplayName: "Swiggy"},
	}, all)
}

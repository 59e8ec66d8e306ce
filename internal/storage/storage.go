package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/carson-networks/txn-integrity/internal/audit"
	"github.com/carson-networks/txn-integrity/internal/config"
	"github.com/carson-networks/txn-integrity/internal/ledger"
	"github.com/carson-networks/txn-integrity/internal/merchant"
	"github.com/carson-networks/txn-integrity/internal/storage/memstore"
	"github.com/carson-networks/txn-integrity/internal/storage/sqlconfig"
)

// TransactionStore is the durable record store. Insert must treat an existing content
// hash as a conflict and report ledger.ErrDuplicateFingerprint.
//
//go:generate mockery --name TransactionStore --inpackage --with-expecter --filename mock_TransactionStore.go
type TransactionStore interface {
	Insert(ctx context.Context, tx *ledger.Transaction) (int64, error)
	Update(ctx context.Context, tx *ledger.Transaction) error
	FindByID(ctx context.Context, id int64) (*ledger.Transaction, error)
	ExistsByFingerprint(ctx context.Context, hash string) (bool, error)
	List(ctx context.Context) ([]*ledger.Transaction, error)
}

type Storage struct {
	DB           *sql.DB
	Transactions TransactionStore
	Changes      audit.Store
	Merchants    merchant.Directory
}

var (
	_ TransactionStore = (*sqlconfig.TransactionsTable)(nil)
	_ TransactionStore = (*memstore.TransactionTable)(nil)
	_ audit.Store      = (*sqlconfig.ChangesTable)(nil)
	_ audit.Store      = (*memstore.ChangeTable)(nil)
)

// NewStorage opens the backend selected by env.
func NewStorage(env *config.Config) (*Storage, error) {
	if env.StorageBackend == config.StorageBackendMemory {
		return NewMemoryStorage(memstore.NewMerchantTable()), nil
	}

	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("storage: open postgres: %w", err)
	}
	return NewPostgresStorage(db), nil
}

func NewPostgresStorage(db *sql.DB) *Storage {
	return &Storage{
		DB:           db,
		Transactions: sqlconfig.NewTransactionsTable(db),
		Changes:      sqlconfig.NewChangesTable(db),
		Merchants:    sqlconfig.NewMerchantAliasesTable(db),
	}
}

// NewMemoryStorage keeps everything in process. The merchant directory is supplied by
// the caller since it is owned elsewhere.
func NewMemoryStorage(merchants merchant.Directory) *Storage {
	return &Storage{
		Transactions: memstore.NewTransactionTable(),
		Changes:      memstore.NewChangeTable(),
		Merchants:    merchants,
	}
}

// Ping checks the database connection. The memory backend is always reachable.
func (s *Storage) Ping(ctx context.Context) error {
	if s.DB == nil {
		return nil
	}
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

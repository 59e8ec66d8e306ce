package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/carson-networks/txn-integrity/internal/ledger"
)

// TransactionTable is an in-memory record store. Content hashes are unique the same way
// the postgres unique index makes them unique.
type TransactionTable struct {
	mu            sync.RWMutex
	nextID        int64
	rows          map[int64]*ledger.Transaction
	byFingerprint map[string]int64
}

func NewTransactionTable() *TransactionTable {
	return &TransactionTable{
		rows:          make(map[int64]*ledger.Transaction),
		byFingerprint: make(map[string]int64),
	}
}

// Insert stores a copy of tx under a new id. The check and the write happen under one lock.
func (t *TransactionTable) Insert(_ context.Context, tx *ledger.Transaction) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	hash, hasHash := fingerprintKey(tx)
	if hasHash {
		if _, taken := t.byFingerprint[hash]; taken {
			return 0, ledger.ErrDuplicateFingerprint
		}
	}

	t.nextID++
	row := tx.Clone()
	row.ID = t.nextID
	t.rows[row.ID] = row
	if hasHash {
		t.byFingerprint[hash] = row.ID
	}
	return row.ID, nil
}

func (t *TransactionTable) Update(_ context.Context, tx *ledger.Transaction) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	prior, ok := t.rows[tx.ID]
	if !ok {
		return ledger.ErrNotFound
	}

	hash, hasHash := fingerprintKey(tx)
	if hasHash {
		if owner, taken := t.byFingerprint[hash]; taken && owner != tx.ID {
			return ledger.ErrDuplicateFingerprint
		}
	}

	if oldHash, had := fingerprintKey(prior); had {
		delete(t.byFingerprint, oldHash)
	}
	if hasHash {
		t.byFingerprint[hash] = tx.ID
	}
	t.rows[tx.ID] = tx.Clone()
	return nil
}

func (t *TransactionTable) FindByID(_ context.Context, id int64) (*ledger.Transaction, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, ledger.ErrNotFound
	}
	return row.Clone(), nil
}

func (t *TransactionTable) ExistsByFingerprint(_ context.Context, hash string) (bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.byFingerprint[hash]
	return ok, nil
}

// List returns every record ordered by id.
func (t *TransactionTable) List(_ context.Context) ([]*ledger.Transaction, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*ledger.Transaction, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, row.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func fingerprintKey(tx *ledger.Transaction) (string, bool) {
	if ledger.IsBlank(tx.ContentHash) {
		return "", false
	}
	return *tx.ContentHash, true
}

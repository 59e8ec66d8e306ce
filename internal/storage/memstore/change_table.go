package memstore

import (
	"context"
	"sync"

	"github.com/carson-networks/txn-integrity/internal/ledger"
)

// ChangeTable keeps change entries per transaction in insertion order.
type ChangeTable struct {
	mu      sync.Mutex
	entries map[int64][]ledger.ChangeEntry
}

func NewChangeTable() *ChangeTable {
	return &ChangeTable{entries: make(map[int64][]ledger.ChangeEntry)}
}

func (c *ChangeTable) Append(_ context.Context, entries []ledger.ChangeEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range entries {
		c.entries[e.TransactionID] = append(c.entries[e.TransactionID], cloneEntry(e))
	}
	return nil
}

// Prune drops all but the newest keep entries of one transaction.
func (c *ChangeTable) Prune(_ context.Context, transactionID int64, keep int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if keep < 0 {
		keep = 0
	}
	list := c.entries[transactionID]
	if len(list) <= keep {
		return nil
	}

	kept := make([]ledger.ChangeEntry, keep)
	copy(kept, list[len(list)-keep:])
	c.entries[transactionID] = kept
	return nil
}

func (c *ChangeTable) ListByTransaction(_ context.Context, transactionID int64) ([]ledger.ChangeEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	list := c.entries[transactionID]
	out := make([]ledger.ChangeEntry, len(list))
	for i, e := range list {
		out[i] = cloneEntry(e)
	}
	return out, nil
}

func cloneEntry(e ledger.ChangeEntry) ledger.ChangeEntry {
	if e.OldValue != nil {
		v := *e.OldValue
		e.OldValue = &v
	}
	if e.NewValue != nil {
		v := *e.NewValue
		e.NewValue = &v
	}
	return e
}

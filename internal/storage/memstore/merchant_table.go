package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/carson-networks/txn-integrity/internal/merchant"
)

// MerchantTable is an in-memory merchant directory.
type MerchantTable struct {
	mu      sync.RWMutex
	aliases map[string]string
}

func NewMerchantTable() *MerchantTable {
	return &MerchantTable{aliases: make(map[string]string)}
}

// Put adds or replaces an alias.
func (m *MerchantTable) Put(originalName, displayName string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aliases[originalName] = displayName
}

func (m *MerchantTable) Lookup(_ context.Context, originalName string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name, ok := m.aliases[originalName]
	return name, ok, nil
}

func (m *MerchantTable) ListAll(_ context.Context) ([]merchant.Alias, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]merchant.Alias, 0, len(m.aliases))
	for original, display := range m.aliases {
		out = append(out, merchant.Alias{OriginalName: original, DisplayName: display})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OriginalName < out[j].OriginalName })
	return out, nil
}

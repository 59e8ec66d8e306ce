package sqlconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/txn-integrity/internal/ledger"
)

const changesTable = "transaction_changes"

var changeColumns = []string{"id", "transaction_id", "field", "old_value", "new_value", "changed_at", "source"}

// ChangeRow is one row of transaction_changes. seq records insertion order for pruning.
type ChangeRow struct {
	ID            uuid.UUID        `db:"id"`
	TransactionID int64            `db:"transaction_id"`
	Field         string           `db:"field"`
	OldValue      null.Val[string] `db:"old_value"`
	NewValue      null.Val[string] `db:"new_value"`
	ChangedAt     int64            `db:"changed_at"`
	Source        string           `db:"source"`
}

// ChangesTable is the postgres audit store.
type ChangesTable struct {
	exec bob.Executor
}

func NewChangesTable(db *sql.DB) *ChangesTable {
	return &ChangesTable{exec: bob.NewDB(db)}
}

// Append writes entries in one statement, in slice order.
func (c *ChangesTable) Append(ctx context.Context, entries []ledger.ChangeEntry) error {
	if len(entries) == 0 {
		return nil
	}

	mods := []bob.Mod[*dialect.InsertQuery]{im.Into(changesTable, changeColumns...)}
	for _, e := range entries {
		mods = append(mods, im.Values(
			psql.Arg(e.ID),
			psql.Arg(e.TransactionID),
			psql.Arg(e.Field),
			psql.Arg(null.FromPtr(e.OldValue)),
			psql.Arg(null.FromPtr(e.NewValue)),
			psql.Arg(e.ChangedAt),
			psql.Arg(string(e.Source)),
		))
	}

	if _, err := bob.Exec(ctx, c.exec, psql.Insert(mods...)); err != nil {
		return fmt.Errorf("transaction_changes: append: %w", err)
	}
	return nil
}

// Prune deletes all but the newest keep entries of one transaction.
func (c *ChangesTable) Prune(ctx context.Context, transactionID int64, keep int) error {
	q := psql.RawQuery(`
		DELETE FROM transaction_changes
		WHERE transaction_id = ?
		  AND seq NOT IN (
			SELECT seq FROM transaction_changes
			WHERE transaction_id = ?
			ORDER BY seq DESC
			LIMIT ?
		  )`, transactionID, transactionID, keep)

	if _, err := bob.Exec(ctx, c.exec, q); err != nil {
		return fmt.Errorf("transaction_changes: prune %d: %w", transactionID, err)
	}
	return nil
}

// ListByTransaction returns a transaction's entries oldest first.
func (c *ChangesTable) ListByTransaction(ctx context.Context, transactionID int64) ([]ledger.ChangeEntry, error) {
	cols := make([]any, len(changeColumns))
	for i, col := range changeColumns {
		cols[i] = col
	}

	q := psql.Select(
		sm.Columns(cols...),
		sm.From(changesTable),
		sm.Where(psql.Quote("transaction_id").EQ(psql.Arg(transactionID))),
		sm.OrderBy("seq").Asc(),
	)

	rows, err := bob.All(ctx, c.exec, q, scan.StructMapper[ChangeRow]())
	if err != nil {
		return nil, fmt.Errorf("transaction_changes: list %d: %w", transactionID, err)
	}

	entries := make([]ledger.ChangeEntry, len(rows))
	for i, row := range rows {
		entries[i] = ledger.ChangeEntry{
			ID:            row.ID,
			TransactionID: row.TransactionID,
			Field:         row.Field,
			OldValue:      row.OldValue.Ptr(),
			NewValue:      row.NewValue.Ptr(),
			ChangedAt:     row.ChangedAt,
			Source:        ledger.ChangeSource(row.Source),
		}
	}
	return entries, nil
}

package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/txn-integrity/internal/ledger"
)

// uniqueViolation is the postgres SQLSTATE for a unique index conflict.
const uniqueViolation = "23505"

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable creates a TransactionsTable for the given database.
func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{exec: bob.NewDB(db)}
}

func selectColumns() []any {
	cols := make([]any, 0, len(transactionColumns)+1)
	cols = append(cols, "id")
	for _, c := range transactionColumns {
		cols = append(cols, c)
	}
	return cols
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id int64) (*ledger.Transaction, error) {
	q := psql.Select(
		sm.Columns(selectColumns()...),
		sm.From(transactionsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[TransactionRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ledger.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("transactions: find %d: %w", id, err)
	}
	return rowToTransaction(row), nil
}

// Insert creates a transaction and returns its generated id. A content hash that is
// already stored yields ErrDuplicateFingerprint; the check and the write are one statement.
func (t *TransactionsTable) Insert(ctx context.Context, tx *ledger.Transaction) (int64, error) {
	values := transactionValues(tx)
	args := make([]bob.Expression, len(values))
	for i, v := range values {
		args[i] = psql.Arg(v)
	}

	q := psql.Insert(
		im.Into(transactionsTable, transactionColumns...),
		im.Values(args...),
		im.OnConflict("content_hash").DoNothing(),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ledger.ErrDuplicateFingerprint
	}
	if err != nil {
		return 0, fmt.Errorf("transactions: insert: %w", err)
	}
	return id, nil
}

// Update overwrites every column of an existing transaction.
func (t *TransactionsTable) Update(ctx context.Context, tx *ledger.Transaction) error {
	values := transactionValues(tx)
	mods := make([]bob.Mod[*dialect.UpdateQuery], 0, len(values)+2)
	mods = append(mods, um.Table(transactionsTable))
	for i, col := range transactionColumns {
		mods = append(mods, um.SetCol(col).ToArg(values[i]))
	}
	mods = append(mods, um.Where(psql.Quote("id").EQ(psql.Arg(tx.ID))))

	res, err := bob.Exec(ctx, t.exec, psql.Update(mods...))
	if isUniqueViolation(err) {
		return ledger.ErrDuplicateFingerprint
	}
	if err != nil {
		return fmt.Errorf("transactions: update %d: %w", tx.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("transactions: update %d: %w", tx.ID, err)
	}
	if affected == 0 {
		return ledger.ErrNotFound
	}
	return nil
}

func (t *TransactionsTable) ExistsByFingerprint(ctx context.Context, hash string) (bool, error) {
	q := psql.Select(
		sm.Columns("id"),
		sm.From(transactionsTable),
		sm.Where(psql.Quote("content_hash").EQ(psql.Arg(hash))),
		sm.Limit(1),
	)

	ids, err := bob.All(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return false, fmt.Errorf("transactions: lookup fingerprint: %w", err)
	}
	return len(ids) > 0, nil
}

// List returns every transaction ordered by id.
func (t *TransactionsTable) List(ctx context.Context) ([]*ledger.Transaction, error) {
	q := psql.Select(
		sm.Columns(selectColumns()...),
		sm.From(transactionsTable),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[TransactionRow]())
	if err != nil {
		return nil, fmt.Errorf("transactions: list: %w", err)
	}

	result := make([]*ledger.Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}

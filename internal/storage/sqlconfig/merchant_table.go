package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/txn-integrity/internal/merchant"
)

const merchantAliasesTable = "merchant_aliases"

type MerchantAliasRow struct {
	OriginalName string `db:"original_name"`
	DisplayName  string `db:"display_name"`
}

// MerchantAliasesTable reads the merchant directory. Writes belong to the directory's owner.
type MerchantAliasesTable struct {
	exec bob.Executor
}

var _ merchant.Directory = (*MerchantAliasesTable)(nil)

func NewMerchantAliasesTable(db *sql.DB) *MerchantAliasesTable {
	return &MerchantAliasesTable{exec: bob.NewDB(db)}
}

func (m *MerchantAliasesTable) Lookup(ctx context.Context, originalName string) (string, bool, error) {
	q := psql.Select(
		sm.Columns("display_name"),
		sm.From(merchantAliasesTable),
		sm.Where(psql.Quote("original_name").EQ(psql.Arg(originalName))),
	)

	name, err := bob.One(ctx, m.exec, q, scan.SingleColumnMapper[string])
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("merchant_aliases: lookup: %w", err)
	}
	return name, true, nil
}

func (m *MerchantAliasesTable) ListAll(ctx context.Context) ([]merchant.Alias, error) {
	q := psql.Select(
		sm.Columns("original_name", "display_name"),
		sm.From(merchantAliasesTable),
		sm.OrderBy("original_name").Asc(),
	)

	rows, err := bob.All(ctx, m.exec, q, scan.StructMapper[MerchantAliasRow]())
	if err != nil {
		return nil, fmt.Errorf("merchant_aliases: list: %w", err)
	}

	aliases := make([]merchant.Alias, len(rows))
	for i, row := range rows {
		aliases[i] = merchant.Alias{OriginalName: row.OriginalName, DisplayName: row.DisplayName}
	}
	return aliases, nil
}

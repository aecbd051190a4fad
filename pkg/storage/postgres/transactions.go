package postgres

import (
	"context"
	"creditscore/pkg/domain"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/ethereum/go-ethereum/common"
)

const (
	transactionsTable = "wallet_transactions"
)

// StoreTransactions inserts transactions and ignores (account, hash) pairs that
// are already stored.
func (p *PgSQL) StoreTransactions(ctx context.Context, txs []domain.Transaction) (int64, error) {
	if len(txs) == 0 {
		return 0, nil
	}

	rows := make([]PgTransaction, len(txs))
	for i := range txs {
		rows[i].FromDomain(txs[i])
	}

	res, err := p.Builder.Insert(transactionsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store transactions into pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count stored transactions: %w", err)
	}

	return n, nil
}

// LatestTransactionBlock returns the highest stored block of the account.
func (p *PgSQL) LatestTransactionBlock(ctx context.Context, account common.Address) (uint64, bool, error) {
	var block sql.NullInt64
	found, err := p.Builder.From(transactionsTable).
		Select(goqu.MAX("block_number")).
		Where(goqu.I("account").Eq(addressKey(account))).
		ScanValContext(ctx, &block)
	if err != nil {
		return 0, false, fmt.Errorf("could not fetch latest transaction block: %w", err)
	}
	if !found || !block.Valid {
		return 0, false, nil
	}

	return uint64(block.Int64), true, nil //nolint: gosec
}

// AccountTransactions returns the account's transactions ordered by block DESC, hash ASC.
func (p *PgSQL) AccountTransactions(ctx context.Context,
	account common.Address,
	limit uint) ([]domain.Transaction, error) {
	ds := p.Builder.From(transactionsTable).
		Where(goqu.I("account").Eq(addressKey(account))).
		Order(goqu.I("block_number").Desc(), goqu.I("hash").Asc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgTransaction
	if err := ds.ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch account transactions from pg: %w", err)
	}

	return pgTransactionsToDomain(rows)
}

package postgres

import (
	"context"
	"creditscore/pkg/domain"
	"fmt"
	"slices"

	"github.com/doug-martin/goqu/v9"
	"github.com/ethereum/go-ethereum/common"
)

const (
	scoreSnapshotsTable = "score_snapshots"
)

// StoreScoreSnapshot inserts a score reading and returns the stored row.
func (p *PgSQL) StoreScoreSnapshot(ctx context.Context, snapshot domain.ScoreSnapshot) (*domain.ScoreSnapshot, error) {
	var in PgScoreSnapshot
	in.FromDomain(snapshot)

	var row PgScoreSnapshot
	if _, err := p.Builder.Insert(scoreSnapshotsTable).
		Rows(in).
		Returning(goqu.Star()).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store score snapshot into pg: %w", err)
	}

	return row.ToDomain(), nil
}

// ScoreHistory returns the latest snapshots of the account, oldest first.
func (p *PgSQL) ScoreHistory(ctx context.Context,
	account common.Address,
	chainID int64,
	limit uint) ([]domain.ScoreSnapshot, error) {
	ds := p.Builder.From(scoreSnapshotsTable).
		Where(
			goqu.I("account").Eq(addressKey(account)),
			goqu.I("chain_id").Eq(chainID),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgScoreSnapshot
	if err := ds.ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch score history from pg: %w", err)
	}

	out := make([]domain.ScoreSnapshot, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}
	slices.Reverse(out)

	return out, nil
}

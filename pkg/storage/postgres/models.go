package postgres

import (
	"creditscore/pkg/domain"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// addressKey is the stored form of an address: lowercase hex.
func addressKey(a common.Address) string {
	return strings.ToLower(a.Hex())
}

type PgTransaction struct {
	Account      string         `db:"account"`
	Hash         string         `db:"hash"`
	BlockNumber  int64          `db:"block_number"`
	FromAddress  string         `db:"from_address"`
	ToAddress    sql.NullString `db:"to_address"`
	Value        string         `db:"value"`
	GasUsed      int64          `db:"gas_used"`
	IsError      bool           `db:"is_error"`
	MethodID     string         `db:"method_id"`
	FunctionName string         `db:"function_name"`
	Timestamp    time.Time      `db:"timestamp"`
	CreatedAt    time.Time      `db:"created_at" goqu:"skipinsert"`
}

func (p *PgTransaction) ToDomain() (*domain.Transaction, error) {
	value, err := decimal.NewFromString(p.Value)
	if err != nil {
		return nil, fmt.Errorf("could not parse transaction value %q: %w", p.Value, err)
	}

	tx := &domain.Transaction{
		Account:      common.HexToAddress(p.Account),
		Hash:         common.HexToHash(p.Hash),
		BlockNumber:  uint64(p.BlockNumber), //nolint: gosec
		From:         common.HexToAddress(p.FromAddress),
		Value:        value,
		GasUsed:      uint64(p.GasUsed), //nolint: gosec
		IsError:      p.IsError,
		MethodID:     p.MethodID,
		FunctionName: p.FunctionName,
		Timestamp:    p.Timestamp.UTC(),
	}
	if p.ToAddress.Valid {
		to := common.HexToAddress(p.ToAddress.String)
		tx.To = &to
	}

	return tx, nil
}

func (p *PgTransaction) FromDomain(tx domain.Transaction) {
	*p = PgTransaction{
		Account:      addressKey(tx.Account),
		Hash:         tx.Hash.Hex(),
		BlockNumber:  int64(tx.BlockNumber), //nolint: gosec
		FromAddress:  addressKey(tx.From),
		Value:        tx.Value.String(),
		GasUsed:      int64(tx.GasUsed), //nolint: gosec
		IsError:      tx.IsError,
		MethodID:     tx.MethodID,
		FunctionName: tx.FunctionName,
		Timestamp:    tx.Timestamp,
	}
	if tx.To != nil {
		p.ToAddress = sql.NullString{String: addressKey(*tx.To), Valid: true}
	}
}

type PgScoreSnapshot struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	Account   string    `db:"account"`
	ChainID   int64     `db:"chain_id"`
	Score     int64     `db:"score"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgScoreSnapshot) ToDomain() *domain.ScoreSnapshot {
	return &domain.ScoreSnapshot{
		ID:        p.ID,
		Account:   common.HexToAddress(p.Account),
		ChainID:   p.ChainID,
		Score:     p.Score,
		CreatedAt: p.CreatedAt.UTC(),
	}
}

func (p *PgScoreSnapshot) FromDomain(s domain.ScoreSnapshot) {
	*p = PgScoreSnapshot{
		ID:        s.ID,
		Account:   addressKey(s.Account),
		ChainID:   s.ChainID,
		Score:     s.Score,
		CreatedAt: s.CreatedAt,
	}
}

func pgTransactionsToDomain(rows []PgTransaction) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0, len(rows))
	for i := range rows {
		tx, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *tx)
	}

	return out, nil
}

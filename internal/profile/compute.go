package profile

import (
	"creditscore/pkg/domain"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

const repayPrefix = "repay"

// Compute derives the profile of account from its transactions. Reverted
// transactions count towards the transaction count and wallet age only.
// CreditScore is left zero.
func Compute(account common.Address, txs []domain.Transaction, now time.Time, decimals int32) domain.UserProfile {
	p := domain.UserProfile{
		Address:          account,
		TransactionCount: int64(len(txs)),
	}

	var first time.Time
	volume := decimal.Zero
	for _, tx := range txs {
		if first.IsZero() || tx.Timestamp.Before(first) {
			first = tx.Timestamp
		}
		if tx.IsError {
			continue
		}

		volume = volume.Add(tx.Value)
		if !tx.IsOutgoing() || !tx.IsContractCall() {
			continue
		}
		p.DefiInteractions++
		if strings.HasPrefix(strings.ToLower(tx.FunctionName), repayPrefix) {
			p.LoanRepayments++
		}
	}

	if !first.IsZero() && now.After(first) {
		p.WalletAge = int64(now.Sub(first) / (24 * time.Hour))
	}
	p.TransactionVolume = volume.Shift(-decimals).IntPart()

	return p
}

package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Transaction is a normal (external) transaction touching Account, as reported
// by the block explorer.
type Transaction struct {
	// Account is the wallet the transaction was fetched for.
	Account common.Address `json:"account"`
	// Hash is the transaction hash.
	Hash common.Hash `json:"hash"`
	// BlockNumber is the block the transaction was mined in.
	BlockNumber uint64 `json:"blockNumber"`
	// From is the sender.
	From common.Address `json:"from"`
	// To is the recipient; nil for contract creations.
	To *common.Address `json:"to"`
	// Value is the transferred amount in wei.
	Value decimal.Decimal `json:"value"`
	// GasUsed is the gas consumed by the transaction.
	GasUsed uint64 `json:"gasUsed"`
	// IsError marks reverted transactions.
	IsError bool `json:"isError"`
	// MethodID is the 4-byte selector of the called function, "0x" for plain transfers.
	MethodID string `json:"methodId"`
	// FunctionName is the decoded function signature when the explorer knows it.
	FunctionName string `json:"functionName"`
	// Timestamp is the block time.
	Timestamp time.Time `json:"timestamp"`
}

// IsOutgoing reports whether Account sent the transaction.
func (t Transaction) IsOutgoing() bool {
	return t.From == t.Account
}

// IsContractCall reports whether the transaction invoked a contract function.
func (t Transaction) IsContractCall() bool {
	return t.To != nil && t.MethodID != "" && t.MethodID != "0x"
}

// NativeValue converts Value from wei to whole native units.
func (t Transaction) NativeValue(decimals int32) decimal.Decimal {
	return t.Value.Shift(-decimals)
}

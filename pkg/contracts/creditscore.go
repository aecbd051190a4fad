// Package contracts holds the deployed contract addresses and call encoding
// for the on-chain credit score contract.
package contracts

import (
	"creditscore/pkg/chains"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// GetCreditScoreMethod is the name of the view function returning a score.
const GetCreditScoreMethod = "getCreditScore"

// CreditScoreABI describes the single view function exposed by the contract.
const CreditScoreABI = `[
  {
    "inputs": [{"name": "address", "type": "address"}],
    "name": "getCreditScore",
    "outputs": [{"name": "", "type": "uint256"}],
    "stateMutability": "view",
    "type": "function"
  }
]`

// ErrEmptyResult is returned when a call returns no data, which is what an
// address without code answers.
var ErrEmptyResult = errors.New("contract call returned no data")

// placeholders until the contract is deployed.
//
//nolint: gochecknoglobals
var creditScoreAddresses = map[int64]common.Address{
	chains.PolygonMumbai.ID: common.HexToAddress("0x0000000000000000000000000000000000000000"),
	chains.Polygon.ID:       common.HexToAddress("0x0000000000000000000000000000000000000000"),
}

// CreditScoreAddress returns the deployed contract address on the given chain.
func CreditScoreAddress(chainID int64) (common.Address, bool) {
	addr, ok := creditScoreAddresses[chainID]

	return addr, ok
}

// CreditScore packs calls to and unpacks results from the credit score contract.
type CreditScore struct {
	abi abi.ABI
}

// NewCreditScore parses CreditScoreABI.
func NewCreditScore() (*CreditScore, error) {
	parsed, err := abi.JSON(strings.NewReader(CreditScoreABI))
	if err != nil {
		return nil, fmt.Errorf("could not parse credit score abi: %w", err)
	}

	return &CreditScore{abi: parsed}, nil
}

// PackGetCreditScore encodes a getCreditScore(user) call.
func (c *CreditScore) PackGetCreditScore(user common.Address) ([]byte, error) {
	data, err := c.abi.Pack(GetCreditScoreMethod, user)
	if err != nil {
		return nil, fmt.Errorf("could not pack %s: %w", GetCreditScoreMethod, err)
	}

	return data, nil
}

// UnpackGetCreditScore decodes the uint256 returned by getCreditScore.
func (c *CreditScore) UnpackGetCreditScore(data []byte) (*big.Int, error) {
	if len(data) == 0 {
		return nil, ErrEmptyResult
	}

	out, err := c.abi.Unpack(GetCreditScoreMethod, data)
	if err != nil {
		return nil, fmt.Errorf("could not unpack %s: %w", GetCreditScoreMethod, err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("unexpected %s output count %d", GetCreditScoreMethod, len(out))
	}

	score, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected %s output type %T", GetCreditScoreMethod, out[0])
	}

	return score, nil
}

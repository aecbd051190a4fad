package contracts_test

import (
	"creditscore/pkg/contracts"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestCreditScoreAddress_PlaceholdersForBothChains(t *testing.T) {
	for _, id := range []int64{137, 80001} {
		addr, ok := contracts.CreditScoreAddress(id)
		require.True(t, ok)
		require.Equal(t, common.Address{}, addr)
	}

	_, ok := contracts.CreditScoreAddress(1)
	require.False(t, ok)
}

func TestPackGetCreditScore(t *testing.T) {
	cs, err := contracts.NewCreditScore()
	require.NoError(t, err)

	user := common.HexToAddress("0x1234567890abcdef1234567890abcdef12345678")
	data, err := cs.PackGetCreditScore(user)
	require.NoError(t, err)
	require.Len(t, data, 4+32)

	selector := crypto.Keccak256([]byte("getCreditScore(address)"))[:4]
	require.Equal(t, selector, data[:4])
	require.Equal(t, common.LeftPadBytes(user.Bytes(), 32), data[4:])
}

func TestUnpackGetCreditScore(t *testing.T) {
	cs, err := contracts.NewCreditScore()
	require.NoError(t, err)

	score, err := cs.UnpackGetCreditScore(common.LeftPadBytes(big.NewInt(720).Bytes(), 32))
	require.NoError(t, err)
	require.Equal(t, int64(720), score.Int64())

	_, err = cs.UnpackGetCreditScore(nil)
	require.ErrorIs(t, err, contracts.ErrEmptyResult)

	_, err = cs.UnpackGetCreditScore([]byte{0x01, 0x02})
	require.Error(t, err)
}

package ethereum

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestWeiToEther(t *testing.T) {
	oneEther, _ := new(big.Int).SetString("1000000000000000000", 10)
	require.Equal(t, "1", WeiToEther(oneEther).String())

	half, _ := new(big.Int).SetString("500000000000000000", 10)
	require.Equal(t, "0.5", WeiToEther(half).String())

	require.Equal(t, "0.000000000000000001", WeiToEther(big.NewInt(1)).String())
	require.True(t, WeiToEther(nil).IsZero())
}

func TestEtherToWeiRoundTrip(t *testing.T) {
	amount := decimal.RequireFromString("2.25")
	wei := EtherToWei(amount)
	require.Equal(t, "2250000000000000000", wei.String())
	require.True(t, WeiToEther(wei).Equal(amount))
}

func TestReceiptSucceeded(t *testing.T) {
	require.True(t, (&Receipt{Status: ReceiptStatusSuccessful}).Succeeded())
	require.False(t, (&Receipt{Status: ReceiptStatusFailed}).Succeeded())
}

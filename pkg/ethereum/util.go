package ethereum

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const weiPerEther = 18

// WeiToEther converts a wei amount to its decimal ether representation.
func WeiToEther(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -weiPerEther)
}

// EtherToWei converts a decimal ether amount to wei, truncating anything
// below one wei.
func EtherToWei(ether decimal.Decimal) *big.Int {
	return ether.Shift(weiPerEther).BigInt()
}

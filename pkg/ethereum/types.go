package ethereum

import (
	"math/big"
)

// Receipt statuses as reported by the chain.
const (
	ReceiptStatusFailed     = uint64(0)
	ReceiptStatusSuccessful = uint64(1)
)

// Receipt is the settled outcome of a mined transaction
type Receipt struct {
	TxHash      string
	Status      uint64
	BlockNumber uint64
}

// Succeeded reports whether the transaction executed without reverting
func (r *Receipt) Succeeded() bool {
	return r.Status == ReceiptStatusSuccessful
}

// TransactionInfo carries the envelope of a transaction, independent of
// whether it mined
type TransactionInfo struct {
	TxHash string
	From   string
	To     string
	Value  *big.Int
}

// NationCreatedEvent represents a NationCreated log emitted by the registry
type NationCreatedEvent struct {
	NationID    int64
	Founder     string
	BlockNumber uint64
	TxHash      string
}

// Package tx constructs, signs, and serializes single-currency legacy
// payment transactions.
//
// Amounts are handled in koinu, the smallest integer denomination
// (1 coin = 1e8 koinu). The ledger-indexing service reports decimal coin
// amounts; they are converted exactly once at the boundary.
package tx

import "math"

const (
	// KoinuPerCoin is the number of smallest units in one whole coin.
	KoinuPerCoin = 1e8

	// FlatFee is the fixed transaction fee: one whole coin.
	FlatFee int64 = KoinuPerCoin
)

// UnspentOutput references a spendable prior transaction output. Supplied
// by the ledger service in a stable caller order; read-only here.
type UnspentOutput struct {
	TxID   string // 64 hex chars, display byte order
	Vout   uint32
	Amount int64 // koinu
}

// ToKoinu converts a decimal coin amount to koinu, rounding to the nearest
// unit to avoid float truncation.
func ToKoinu(coins float64) int64 {
	return int64(math.Round(coins * KoinuPerCoin))
}

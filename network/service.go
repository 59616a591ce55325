// Package network is the ledger-indexing service boundary: balance lookup,
// unspent-output listing, and raw transaction broadcast over HTTP.
//
// The transaction engine consumes the two narrow interfaces below and
// treats every failure here as terminal for the attempt; retries, if
// wanted, belong to the caller, which must re-fetch unspent outputs before
// retrying to avoid reusing already-spent ones.
package network

import "context"

// UTXO is an unspent transaction output as reported by the ledger service,
// with the amount already converted to koinu.
type UTXO struct {
	TxID   string `json:"txid"`
	Vout   uint32 `json:"vout"`
	Amount int64  `json:"amount"`
}

// LedgerService provides the read-only queries the wallet needs. ListUnspent
// must return outputs in a stable server order and must not serve cached
// results: a stale output list risks building a double spend.
type LedgerService interface {
	// GetBalance returns the confirmed balance for the address, in koinu.
	GetBalance(ctx context.Context, address string) (int64, error)

	// ListUnspent returns all unspent transaction outputs for the address.
	ListUnspent(ctx context.Context, address string) ([]*UTXO, error)
}

// Broadcaster submits a signed raw transaction. Fire-and-forget: no retry,
// no inclusion confirmation.
type Broadcaster interface {
	// BroadcastTx submits a raw transaction hex and returns the txid the
	// service acknowledged.
	BroadcastTx(ctx context.Context, rawTxHex string) (string, error)
}

package wallet

import (
	"context"
	"fmt"

	"github.com/Sergey095/adamant-im/network"
	"github.com/Sergey095/adamant-im/tx"
)

// Wallet binds a derived key pair and network parameters to a ledger
// service. Everything inside is immutable after New, so a single wallet
// may serve concurrent transaction builds; each build re-fetches unspent
// outputs from the service.
type Wallet struct {
	keys    *KeyPair
	address string
	params  *NetParams
	ledger  network.LedgerService
	caster  network.Broadcaster
	fee     int64
}

// Option configures a Wallet at construction time.
type Option func(*walletConfig)

type walletConfig struct {
	deriver Deriver
	caster  network.Broadcaster
	fee     int64
}

// WithDeriver substitutes the passphrase key-derivation strategy.
// The default is SHA256Deriver.
func WithDeriver(d Deriver) Option {
	return func(c *walletConfig) { c.deriver = d }
}

// WithBroadcaster enables Send by providing a broadcast endpoint.
func WithBroadcaster(b network.Broadcaster) Option {
	return func(c *walletConfig) { c.caster = b }
}

// WithFlatFee overrides the flat transaction fee, in koinu. Zero keeps
// the default flat fee; a negative fee is rejected when building.
func WithFlatFee(fee int64) Option {
	return func(c *walletConfig) { c.fee = fee }
}

// New derives the wallet identity from the passphrase and binds it to the
// ledger service. The same (passphrase, params) pair always yields the
// same address.
func New(passphrase string, params *NetParams, ledger network.LedgerService, opts ...Option) (*Wallet, error) {
	if params == nil {
		return nil, ErrNilParams
	}

	var cfg walletConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	keys, err := DeriveKeyPair(passphrase, cfg.deriver)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		keys:    keys,
		address: keys.Address(params),
		params:  params,
		ledger:  ledger,
		caster:  cfg.caster,
		fee:     cfg.fee,
	}, nil
}

// Address returns the wallet's P2PKH address.
func (w *Wallet) Address() string {
	return w.address
}

// Keys returns the wallet's key pair.
func (w *Wallet) Keys() *KeyPair {
	return w.keys
}

// Params returns the wallet's network parameters.
func (w *Wallet) Params() *NetParams {
	return w.params
}

// Balance returns the confirmed balance of the wallet address, in koinu.
func (w *Wallet) Balance(ctx context.Context) (int64, error) {
	return w.ledger.GetBalance(ctx, w.address)
}

// CreateTransaction fetches the wallet's unspent outputs and builds a
// signed payment of amount whole coins to destination, with change back
// to the wallet. The result is never cached; every call starts from a
// fresh output list.
func (w *Wallet) CreateTransaction(ctx context.Context, destination string, amount float64) (*tx.Signed, error) {
	if err := ValidateAddress(destination, w.params); err != nil {
		return nil, fmt.Errorf("%w: destination %q", err, destination)
	}

	utxos, err := w.ledger.ListUnspent(ctx, w.address)
	if err != nil {
		return nil, err
	}

	unspents := make([]tx.UnspentOutput, len(utxos))
	for i, u := range utxos {
		unspents[i] = tx.UnspentOutput{
			TxID:   u.TxID,
			Vout:   u.Vout,
			Amount: u.Amount,
		}
	}

	return tx.Create(tx.CreateParams{
		Destination:   destination,
		Amount:        amount,
		Unspents:      unspents,
		Key:           w.keys.PrivateKey,
		ChangeAddress: w.address,
		AddrVersion:   w.params.PubKeyHashVersion,
		Fee:           w.fee,
	})
}

// Send builds a payment and broadcasts it, returning the txid the service
// acknowledged. No retry: callers that want to retry must start over so a
// fresh unspent list is fetched.
func (w *Wallet) Send(ctx context.Context, destination string, amount float64) (string, error) {
	if w.caster == nil {
		return "", ErrNoBroadcaster
	}

	signed, err := w.CreateTransaction(ctx, destination, amount)
	if err != nil {
		return "", err
	}

	return w.caster.BroadcastTx(ctx, signed.Hex)
}

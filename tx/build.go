package tx

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// TxVersion is the legacy transaction version serialized into every build.
const TxVersion = 1

// pubKeyHashLen is the length of a RIPEMD-160 public key hash.
const pubKeyHashLen = 20

// buildState tracks the builder's position in its lifecycle. Transitions
// are strictly ordered; any method called out of order fails with
// ErrInvalidState.
type buildState int

const (
	stateEmpty buildState = iota
	stateInputsAdded
	stateOutputsAdded
	stateSigned
	stateSerialized
)

func (s buildState) String() string {
	switch s {
	case stateEmpty:
		return "empty"
	case stateInputsAdded:
		return "inputs added"
	case stateOutputsAdded:
		return "outputs added"
	case stateSigned:
		return "signed"
	case stateSerialized:
		return "serialized"
	}
	return "unknown"
}

// Signed is the result of a completed build: the lowercase hex encoding of
// the raw transaction and its display-order txid (byte-reversed double
// SHA-256 of the raw bytes). Created once per build, never retained.
type Signed struct {
	Hex  string
	TxID string
	Raw  []byte
}

// Builder assembles a legacy payment transaction in four validated stages:
// empty -> inputs added -> outputs added -> signed -> serialized.
// A Builder is single-use; after Serialize the transaction is immutable.
type Builder struct {
	state       buildState
	msg         *wire.MsgTx
	addrVersion byte
	spendScript []byte // locking script of the outputs being spent
}

// NewBuilder creates an empty builder for a network identified by its
// pubkey-hash address version byte.
func NewBuilder(addrVersion byte) *Builder {
	return &Builder{
		state:       stateEmpty,
		msg:         wire.NewMsgTx(TxVersion),
		addrVersion: addrVersion,
	}
}

// AddInputs attaches the selected unspent outputs as transaction inputs.
// ownAddress is the wallet address the outputs are locked to; its P2PKH
// script becomes both the sighash subscript and the change destination.
func (b *Builder) AddInputs(ownAddress string, inputs []UnspentOutput) error {
	if b.state != stateEmpty {
		return fmt.Errorf("%w: AddInputs in state %q", ErrInvalidState, b.state)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("%w: no inputs selected", ErrInvalidInput)
	}

	ownHash, err := pubKeyHashForAddress(ownAddress, b.addrVersion)
	if err != nil {
		return fmt.Errorf("%w: own address: %w", ErrInvalidAddress, err)
	}
	b.spendScript, err = payToPubKeyHashScript(ownHash)
	if err != nil {
		return fmt.Errorf("%w: spend script: %w", ErrInvalidAddress, err)
	}

	for i, in := range inputs {
		prevHash, err := chainhash.NewHashFromStr(in.TxID)
		if err != nil {
			return fmt.Errorf("%w: input %d txid %q: %w", ErrInvalidInput, i, in.TxID, err)
		}
		op := wire.NewOutPoint(prevHash, in.Vout)
		b.msg.AddTxIn(wire.NewTxIn(op, nil, nil))
	}

	b.state = stateInputsAdded
	return nil
}

// AddOutputs attaches the payment output and, when positive, the change
// output back to the spending address. A negative change means selection
// under-filled the target and is rejected here rather than serialized into
// an invalid transaction.
func (b *Builder) AddOutputs(destination string, sendAmount, change int64) error {
	if b.state != stateInputsAdded {
		return fmt.Errorf("%w: AddOutputs in state %q", ErrInvalidState, b.state)
	}
	if sendAmount <= 0 {
		return fmt.Errorf("%w: send amount %d koinu", ErrInvalidAmount, sendAmount)
	}
	if change < 0 {
		return fmt.Errorf("%w: change would be %d koinu", ErrInsufficientFunds, change)
	}

	destHash, err := pubKeyHashForAddress(destination, b.addrVersion)
	if err != nil {
		return fmt.Errorf("%w: destination: %w", ErrInvalidAddress, err)
	}
	destScript, err := payToPubKeyHashScript(destHash)
	if err != nil {
		return fmt.Errorf("%w: destination script: %w", ErrInvalidAddress, err)
	}

	b.msg.AddTxOut(wire.NewTxOut(sendAmount, destScript))
	if change > 0 {
		b.msg.AddTxOut(wire.NewTxOut(change, b.spendScript))
	}

	b.state = stateOutputsAdded
	return nil
}

// Sign produces a legacy P2PKH signature script for every input using the
// single owning key. Signing is a pure function of the transaction and the
// key; the key is never mutated and may be shared across builders.
func (b *Builder) Sign(key *btcec.PrivateKey) error {
	if b.state != stateOutputsAdded {
		return fmt.Errorf("%w: Sign in state %q", ErrInvalidState, b.state)
	}
	if key == nil {
		return fmt.Errorf("%w: nil private key", ErrSigningFailed)
	}

	for i := range b.msg.TxIn {
		sig, err := txscript.SignatureScript(
			b.msg, i, b.spendScript, txscript.SigHashAll, key, true,
		)
		if err != nil {
			return fmt.Errorf("%w: input %d: %w", ErrSigningFailed, i, err)
		}
		b.msg.TxIn[i].SignatureScript = sig
	}

	b.state = stateSigned
	return nil
}

// Serialize encodes the signed transaction to the legacy wire format and
// computes its txid. The builder is finished after this call.
func (b *Builder) Serialize() (*Signed, error) {
	if b.state != stateSigned {
		return nil, fmt.Errorf("%w: Serialize in state %q", ErrInvalidState, b.state)
	}

	var buf bytes.Buffer
	buf.Grow(b.msg.SerializeSize())
	if err := b.msg.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("tx: serialize: %w", err)
	}

	b.state = stateSerialized
	raw := buf.Bytes()
	return &Signed{
		Hex:  hex.EncodeToString(raw),
		TxID: b.msg.TxHash().String(),
		Raw:  raw,
	}, nil
}

// CreateParams carries everything a single payment build needs.
type CreateParams struct {
	Destination   string  // recipient P2PKH address
	Amount        float64 // whole coins to send
	Unspents      []UnspentOutput
	Key           *btcec.PrivateKey
	ChangeAddress string // the wallet's own address
	AddrVersion   byte   // network pubkey-hash version byte
	Fee           int64  // koinu; zero means FlatFee, negative is rejected
}

// Create runs the full pipeline: convert the decimal amount, select
// inputs against target = amount + fee, reject under-filled selections,
// then build, sign, and serialize.
func Create(p CreateParams) (*Signed, error) {
	if p.Amount <= 0 {
		return nil, fmt.Errorf("%w: %v coins", ErrInvalidAmount, p.Amount)
	}
	if p.Fee < 0 {
		return nil, fmt.Errorf("%w: fee %d koinu", ErrInvalidAmount, p.Fee)
	}
	fee := p.Fee
	if fee == 0 {
		fee = FlatFee
	}

	send := ToKoinu(p.Amount)
	target := send + fee

	selected, total := Select(target, p.Unspents)
	if total < target {
		return nil, fmt.Errorf("%w: need %d koinu, have %d", ErrInsufficientFunds, target, total)
	}

	b := NewBuilder(p.AddrVersion)
	if err := b.AddInputs(p.ChangeAddress, selected); err != nil {
		return nil, err
	}
	if err := b.AddOutputs(p.Destination, send, total-target); err != nil {
		return nil, err
	}
	if err := b.Sign(p.Key); err != nil {
		return nil, err
	}
	return b.Serialize()
}

// pubKeyHashForAddress decodes a base58check address and checks its
// version byte against the network's.
func pubKeyHashForAddress(addr string, version byte) ([]byte, error) {
	hash, ver, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, err
	}
	if ver != version {
		return nil, fmt.Errorf("version byte 0x%02x, want 0x%02x", ver, version)
	}
	if len(hash) != pubKeyHashLen {
		return nil, fmt.Errorf("pubkey hash is %d bytes, want %d", len(hash), pubKeyHashLen)
	}
	return hash, nil
}

// payToPubKeyHashScript builds the standard P2PKH locking script:
// OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY OP_CHECKSIG.
func payToPubKeyHashScript(pubKeyHash []byte) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_DUP).
		AddOp(txscript.OP_HASH160).
		AddData(pubKeyHash).
		AddOp(txscript.OP_EQUALVERIFY).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

package wallet

import (
	"bytes"
	"context"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sergey095/adamant-im/network"
	"github.com/Sergey095/adamant-im/tx"
)

func fixedUnspents(utxos ...*network.UTXO) *network.MockLedgerService {
	return &network.MockLedgerService{
		GetBalanceFn: func(ctx context.Context, address string) (int64, error) {
			var total int64
			for _, u := range utxos {
				total += u.Amount
			}
			return total, nil
		},
		ListUnspentFn: func(ctx context.Context, address string) ([]*network.UTXO, error) {
			return utxos, nil
		},
	}
}

func destAddress(t *testing.T) string {
	t.Helper()
	kp, err := DeriveKeyPair("destination", nil)
	require.NoError(t, err)
	return kp.Address(&TestNet)
}

func TestNewWalletStableAddress(t *testing.T) {
	svc := fixedUnspents()

	a, err := New("test", &TestNet, svc)
	require.NoError(t, err)
	b, err := New("test", &TestNet, svc)
	require.NoError(t, err)

	assert.Equal(t, a.Address(), b.Address())
	require.NoError(t, ValidateAddress(a.Address(), &TestNet))
}

func TestNewWalletNilParams(t *testing.T) {
	_, err := New("test", nil, fixedUnspents())
	require.ErrorIs(t, err, ErrNilParams)
}

func TestWalletBalance(t *testing.T) {
	svc := fixedUnspents(&network.UTXO{TxID: strings.Repeat("aa", 32), Vout: 0, Amount: 5 * tx.KoinuPerCoin})

	w, err := New("test", &TestNet, svc)
	require.NoError(t, err)

	balance, err := w.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5*tx.KoinuPerCoin), balance)
}

func TestWalletCreateTransaction(t *testing.T) {
	svc := fixedUnspents(&network.UTXO{TxID: strings.Repeat("aa", 32), Vout: 0, Amount: 5 * tx.KoinuPerCoin})

	w, err := New("test", &TestNet, svc)
	require.NoError(t, err)

	signed, err := w.CreateTransaction(context.Background(), destAddress(t), 1.0)
	require.NoError(t, err)

	raw, err := hex.DecodeString(signed.Hex)
	require.NoError(t, err)
	var msg wire.MsgTx
	require.NoError(t, msg.Deserialize(bytes.NewReader(raw)))
	require.Len(t, msg.TxIn, 1)
	require.Len(t, msg.TxOut, 2)
	assert.Equal(t, int64(100000000), msg.TxOut[0].Value)
	assert.Equal(t, int64(300000000), msg.TxOut[1].Value)
}

func TestWalletCreateTransactionInvalidDestination(t *testing.T) {
	w, err := New("test", &TestNet, fixedUnspents())
	require.NoError(t, err)

	_, err = w.CreateTransaction(context.Background(), "garbage", 1.0)
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestWalletCreateTransactionInsufficientFunds(t *testing.T) {
	svc := fixedUnspents(&network.UTXO{TxID: strings.Repeat("aa", 32), Vout: 0, Amount: tx.ToKoinu(0.5)})

	w, err := New("test", &TestNet, svc)
	require.NoError(t, err)

	_, err = w.CreateTransaction(context.Background(), destAddress(t), 2.0)
	require.ErrorIs(t, err, tx.ErrInsufficientFunds)
}

func TestWalletCreateTransactionTransportFailure(t *testing.T) {
	svc := &network.MockLedgerService{
		ListUnspentFn: func(ctx context.Context, address string) ([]*network.UTXO, error) {
			return nil, network.ErrConnectionFailed
		},
	}

	w, err := New("test", &TestNet, svc)
	require.NoError(t, err)

	_, err = w.CreateTransaction(context.Background(), destAddress(t), 1.0)
	require.ErrorIs(t, err, network.ErrConnectionFailed)
}

func TestWalletSend(t *testing.T) {
	svc := fixedUnspents(&network.UTXO{TxID: strings.Repeat("aa", 32), Vout: 0, Amount: 5 * tx.KoinuPerCoin})

	var broadcasted string
	caster := &network.MockBroadcaster{
		BroadcastTxFn: func(ctx context.Context, rawTxHex string) (string, error) {
			broadcasted = rawTxHex
			return "acked-txid", nil
		},
	}

	w, err := New("test", &TestNet, svc, WithBroadcaster(caster))
	require.NoError(t, err)

	txid, err := w.Send(context.Background(), destAddress(t), 1.0)
	require.NoError(t, err)
	assert.Equal(t, "acked-txid", txid)

	// The broadcast payload is the serialized transaction.
	raw, err := hex.DecodeString(broadcasted)
	require.NoError(t, err)
	var msg wire.MsgTx
	require.NoError(t, msg.Deserialize(bytes.NewReader(raw)))
	require.Len(t, msg.TxOut, 2)
}

func TestWalletSendWithoutBroadcaster(t *testing.T) {
	w, err := New("test", &TestNet, fixedUnspents())
	require.NoError(t, err)

	_, err = w.Send(context.Background(), destAddress(t), 1.0)
	require.ErrorIs(t, err, ErrNoBroadcaster)
}

func TestWalletCustomFee(t *testing.T) {
	svc := fixedUnspents(&network.UTXO{TxID: strings.Repeat("aa", 32), Vout: 0, Amount: 5 * tx.KoinuPerCoin})

	w, err := New("test", &TestNet, svc, WithFlatFee(tx.ToKoinu(0.5)))
	require.NoError(t, err)

	signed, err := w.CreateTransaction(context.Background(), destAddress(t), 1.0)
	require.NoError(t, err)

	raw, err := hex.DecodeString(signed.Hex)
	require.NoError(t, err)
	var msg wire.MsgTx
	require.NoError(t, msg.Deserialize(bytes.NewReader(raw)))
	require.Len(t, msg.TxOut, 2)
	assert.Equal(t, tx.ToKoinu(3.5), msg.TxOut[1].Value)
}

func TestWalletCustomDeriver(t *testing.T) {
	svc := fixedUnspents()

	legacy, err := New("test", &TestNet, svc)
	require.NoError(t, err)
	hardened, err := New("test", &TestNet, svc, WithDeriver(Argon2idDeriver))
	require.NoError(t, err)

	assert.NotEqual(t, legacy.Address(), hardened.Address())
}

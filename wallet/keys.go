// Package wallet derives deterministic Dogecoin key pairs and addresses
// from a passphrase.
//
// The private key is a pure function of (passphrase, deriver); nothing is
// ever persisted. Key pairs and network parameters are immutable after
// construction and safe to share across concurrent transaction builds.
package wallet

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ripemd160"
)

// pubKeyHashLen is the length of a RIPEMD-160 public key hash.
const pubKeyHashLen = 20

// KeyPair holds the wallet's private/public key pair. The private key is
// re-derived from the passphrase on every wallet construction and never
// serialized.
type KeyPair struct {
	PrivateKey *btcec.PrivateKey
	PublicKey  *btcec.PublicKey
}

// DeriveKeyPair derives a key pair from a passphrase. A nil deriver means
// SHA256Deriver. The digest is rejected with ErrInvalidKeyMaterial when it
// is zero or not below the curve order; the probability is negligible but
// the check is mandatory.
func DeriveKeyPair(passphrase string, derive Deriver) (*KeyPair, error) {
	if derive == nil {
		derive = SHA256Deriver
	}
	digest := derive(passphrase)

	var scalar secp256k1.ModNScalar
	overflow := scalar.SetBytes(&digest)
	if overflow != 0 || scalar.IsZero() {
		return nil, ErrInvalidKeyMaterial
	}

	priv := secp256k1.NewPrivateKey(&scalar)
	return &KeyPair{
		PrivateKey: priv,
		PublicKey:  priv.PubKey(),
	}, nil
}

// Address returns the base58check P2PKH address for the key pair on the
// given network: version byte || hash160(compressed pubkey) || checksum.
func (k *KeyPair) Address(params *NetParams) string {
	return base58.CheckEncode(Hash160(k.PublicKey.SerializeCompressed()), params.PubKeyHashVersion)
}

// WIF returns the private key in wallet import format (compressed).
func (k *KeyPair) WIF(params *NetParams) string {
	payload := make([]byte, 0, 33)
	payload = append(payload, k.PrivateKey.Serialize()...)
	payload = append(payload, 0x01) // compressed pubkey marker
	return base58.CheckEncode(payload, params.WIFVersion)
}

// ValidateAddress checks that addr is a well-formed base58check P2PKH
// address carrying the network's pubkey-hash version byte.
func ValidateAddress(addr string, params *NetParams) error {
	hash, version, err := base58.CheckDecode(addr)
	if err != nil {
		return ErrInvalidAddress
	}
	if version != params.PubKeyHashVersion || len(hash) != pubKeyHashLen {
		return ErrInvalidAddress
	}
	return nil
}

// Hash160 computes RIPEMD-160(SHA-256(data)).
func Hash160(data []byte) []byte {
	sum := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

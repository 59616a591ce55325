package wallet

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// SignMessage produces a base64 compact signature over the message using
// the network's signed-message prefix.
func SignMessage(key *KeyPair, params *NetParams, message string) (string, error) {
	digest, err := messageDigest(params.MessagePrefix, message)
	if err != nil {
		return "", err
	}
	sig := ecdsa.SignCompact(key.PrivateKey, digest, true)
	return base64.StdEncoding.EncodeToString(sig), nil
}

// VerifyMessage checks a base64 compact signature against the address that
// claims to have produced it. It recovers the public key from the
// signature, re-derives the address, and compares.
func VerifyMessage(address, signature, message string, params *NetParams) error {
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSignatureInvalid, err)
	}

	digest, err := messageDigest(params.MessagePrefix, message)
	if err != nil {
		return err
	}

	pub, compressed, err := ecdsa.RecoverCompact(sig, digest)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSignatureInvalid, err)
	}

	serialized := pub.SerializeUncompressed()
	if compressed {
		serialized = pub.SerializeCompressed()
	}

	recovered := base58.CheckEncode(Hash160(serialized), params.PubKeyHashVersion)
	if recovered != address {
		return ErrSignatureInvalid
	}
	return nil
}

// messageDigest computes the double-SHA256 of the varstring-framed prefix
// and message, per the standard signed-message scheme.
func messageDigest(prefix, message string) ([]byte, error) {
	var buf bytes.Buffer
	if err := wire.WriteVarString(&buf, 0, prefix); err != nil {
		return nil, fmt.Errorf("wallet: framing message prefix: %w", err)
	}
	if err := wire.WriteVarString(&buf, 0, message); err != nil {
		return nil, fmt.Errorf("wallet: framing message: %w", err)
	}
	return chainhash.DoubleHashB(buf.Bytes()), nil
}

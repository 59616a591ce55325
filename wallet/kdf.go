package wallet

import (
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
)

// A Deriver turns a passphrase into 32 bytes of private key material.
// Derivers must be deterministic: the same passphrase always yields the
// same digest. The transaction engine never sees the passphrase, only the
// key pair derived from the digest, so the strategy can be swapped without
// touching it.
type Deriver func(passphrase string) [32]byte

const (
	// Argon2id parameters for the hardened deriver.
	Argon2Time        = 3
	Argon2Memory      = 64 * 1024 // 64 MB
	Argon2Parallelism = 4
	Argon2KeyLen      = 32
)

// argon2Salt is a fixed domain-separation salt. Derivation must stay a
// pure function of the passphrase, so the salt cannot be random.
var argon2Salt = []byte("adamant-im/wallet/argon2id:v1")

// SHA256Deriver is the legacy scheme: a single unsalted SHA-256 pass over
// the raw passphrase bytes. Passphrase strength is entirely the caller's
// responsibility.
func SHA256Deriver(passphrase string) [32]byte {
	return sha256.Sum256([]byte(passphrase))
}

// Argon2idDeriver is a memory-hard alternative to SHA256Deriver. Wallets
// created with one deriver are not reachable from the other.
func Argon2idDeriver(passphrase string) [32]byte {
	key := argon2.IDKey(
		[]byte(passphrase),
		argon2Salt,
		Argon2Time,
		Argon2Memory,
		Argon2Parallelism,
		Argon2KeyLen,
	)
	var digest [32]byte
	copy(digest[:], key)
	return digest
}

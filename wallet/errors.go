package wallet

import "errors"

var (
	// ErrInvalidKeyMaterial indicates the derived digest is not a valid
	// private scalar for the curve (zero or >= group order).
	ErrInvalidKeyMaterial = errors.New("wallet: derived key material is not a valid private key")

	// ErrInvalidNetwork indicates unknown network name with no custom config.
	ErrInvalidNetwork = errors.New("wallet: invalid network name")

	// ErrInvalidAddress indicates an address fails base58check decoding or
	// carries the wrong version byte for the configured network.
	ErrInvalidAddress = errors.New("wallet: invalid address")

	// ErrSignatureInvalid indicates a signed message does not verify
	// against the claimed address.
	ErrSignatureInvalid = errors.New("wallet: signature verification failed")

	// ErrNoBroadcaster indicates Send was called on a wallet constructed
	// without a broadcaster.
	ErrNoBroadcaster = errors.New("wallet: no broadcaster configured")

	// ErrNilParams indicates a nil network parameter set.
	ErrNilParams = errors.New("wallet: network parameters are nil")
)

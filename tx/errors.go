package tx

import "errors"

var (
	// ErrInsufficientFunds indicates the available unspent outputs cannot
	// cover the send amount plus the flat fee. No transaction is produced.
	ErrInsufficientFunds = errors.New("tx: insufficient funds")

	// ErrSigningFailed indicates a signature could not be produced for an
	// input.
	ErrSigningFailed = errors.New("tx: signing failed")

	// ErrInvalidState indicates a builder method was called out of order.
	ErrInvalidState = errors.New("tx: invalid builder state")

	// ErrInvalidAddress indicates a destination or change address is
	// malformed or carries the wrong version byte.
	ErrInvalidAddress = errors.New("tx: invalid address")

	// ErrInvalidAmount indicates a non-positive send amount.
	ErrInvalidAmount = errors.New("tx: invalid amount")

	// ErrInvalidInput indicates an unspent output reference is malformed.
	ErrInvalidInput = errors.New("tx: invalid input reference")
)

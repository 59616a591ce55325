package network

import "errors"

var (
	// ErrConnectionFailed indicates the HTTP request to the ledger service
	// did not complete (network failure, timeout, cancellation).
	ErrConnectionFailed = errors.New("network: connection failed")

	// ErrInvalidResponse indicates the service answered with a body that
	// could not be decoded.
	ErrInvalidResponse = errors.New("network: invalid response")

	// ErrBroadcastRejected indicates the service refused the submitted
	// raw transaction.
	ErrBroadcastRejected = errors.New("network: broadcast rejected")
)

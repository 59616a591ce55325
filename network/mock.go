package network

import "context"

// MockLedgerService is a test double for LedgerService.
// All function fields must be set before the corresponding method is called.
type MockLedgerService struct {
	GetBalanceFn  func(ctx context.Context, address string) (int64, error)
	ListUnspentFn func(ctx context.Context, address string) ([]*UTXO, error)
}

func (m *MockLedgerService) GetBalance(ctx context.Context, address string) (int64, error) {
	return m.GetBalanceFn(ctx, address)
}

func (m *MockLedgerService) ListUnspent(ctx context.Context, address string) ([]*UTXO, error) {
	return m.ListUnspentFn(ctx, address)
}

// MockBroadcaster is a test double for Broadcaster.
type MockBroadcaster struct {
	BroadcastTxFn func(ctx context.Context, rawTxHex string) (string, error)
}

func (m *MockBroadcaster) BroadcastTx(ctx context.Context, rawTxHex string) (string, error) {
	return m.BroadcastTxFn(ctx, rawTxHex)
}

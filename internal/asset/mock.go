package asset

import (
	"context"
	"fmt"
	"sync"

	"github.com/dualpay/market-backend/internal/model"
)

// MockBackend implements TransferBackend for tests, recording every call and
// failing on demand so settlement rollback paths can be exercised.
type MockBackend struct {
	mu sync.Mutex

	EncumberErr error
	PayoutErr   error

	Encumbered []MockTransfer
	Released   []MockTransfer
	Payouts    []MockTransfer

	seq uint64
}

type MockTransfer struct {
	Ref       string
	Kind      model.AssetKind
	Principal string
	Amount    uint64
}

func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

func (m *MockBackend) Encumber(ctx context.Context, kind model.AssetKind, from string, amount uint64) (*TransferHandle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.EncumberErr != nil {
		return nil, m.EncumberErr
	}
	m.seq++
	ref := fmt.Sprintf("mock_enc_%d", m.seq)
	m.Encumbered = append(m.Encumbered, MockTransfer{Ref: ref, Kind: kind, Principal: from, Amount: amount})
	return &TransferHandle{ID: ref, Kind: kind, Amount: amount}, nil
}

func (m *MockBackend) Release(ctx context.Context, handle *TransferHandle, to string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Released = append(m.Released, MockTransfer{Ref: handle.ID, Kind: handle.Kind, Principal: to, Amount: handle.Amount})
	return nil
}

func (m *MockBackend) Payout(ctx context.Context, kind model.AssetKind, to string, amount uint64) (*TransferHandle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PayoutErr != nil {
		return nil, m.PayoutErr
	}
	m.seq++
	ref := fmt.Sprintf("mock_pay_%d", m.seq)
	m.Payouts = append(m.Payouts, MockTransfer{Ref: ref, Kind: kind, Principal: to, Amount: amount})
	return &TransferHandle{ID: ref, Kind: kind, Amount: amount}, nil
}

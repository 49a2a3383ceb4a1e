package asset

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/dualpay/market-backend/internal/model"
)

// StubBackend is an in-process TransferBackend for local development and
// demos. It keeps per-kind escrow totals so leaks show up in logs, but it
// performs no real transfers.
type StubBackend struct {
	mu      sync.Mutex
	escrow  map[model.AssetKind]uint64
	entropy *ulid.MonotonicEntropy
	log     *slog.Logger
}

func NewStubBackend(log *slog.Logger) *StubBackend {
	if log == nil {
		log = slog.Default()
	}
	return &StubBackend{
		escrow:  make(map[model.AssetKind]uint64),
		entropy: ulid.Monotonic(rand.Reader, 0),
		log:     log,
	}
}

func (b *StubBackend) Encumber(ctx context.Context, kind model.AssetKind, from string, amount uint64) (*TransferHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.escrow[kind] += amount
	h := b.newHandle(kind, amount)
	b.log.Info("encumbered funds", "kind", string(kind), "from", from, "amount", amount, "ref", h.ID, "escrow", b.escrow[kind])
	return h, nil
}

func (b *StubBackend) Release(ctx context.Context, handle *TransferHandle, to string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.escrow[handle.Kind] < handle.Amount {
		return fmt.Errorf("release %s: escrow underflow", handle.ID)
	}
	b.escrow[handle.Kind] -= handle.Amount
	b.log.Info("released encumbrance", "kind", string(handle.Kind), "to", to, "amount", handle.Amount, "ref", handle.ID)
	return nil
}

func (b *StubBackend) Payout(ctx context.Context, kind model.AssetKind, to string, amount uint64) (*TransferHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.escrow[kind] < amount {
		return nil, fmt.Errorf("payout %s: escrow holds %d, need %d", kind, b.escrow[kind], amount)
	}
	b.escrow[kind] -= amount
	h := b.newHandle(kind, amount)
	b.log.Info("paid out earnings", "kind", string(kind), "to", to, "amount", amount, "ref", h.ID, "escrow", b.escrow[kind])
	return h, nil
}

// Escrowed reports the total currently held for one asset kind.
func (b *StubBackend) Escrowed(kind model.AssetKind) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.escrow[kind]
}

func (b *StubBackend) newHandle(kind model.AssetKind, amount uint64) *TransferHandle {
	now := time.Now()
	return &TransferHandle{
		ID:          ulid.MustNew(ulid.Timestamp(now), b.entropy).String(),
		Kind:        kind,
		Amount:      amount,
		ConfirmedAt: now,
	}
}

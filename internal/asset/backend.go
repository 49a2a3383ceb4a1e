// Package asset defines the boundary to the external transfer backend that
// actually moves the two settlement assets. The core treats both kinds
// uniformly; a backend implementation maps them onto whatever rails it
// fronts (native transfer vs. token contract, ledger API, ...).
package asset

import (
	"context"
	"time"

	"github.com/dualpay/market-backend/internal/model"
)

// TransferHandle identifies a confirmed transfer at the backend.
type TransferHandle struct {
	ID          string
	Kind        model.AssetKind
	Amount      uint64
	ConfirmedAt time.Time
}

// TransferBackend moves funds between principals and the marketplace.
//
// Encumber debits the buyer into marketplace custody and must confirm before
// any core state is mutated. Release returns an encumbrance to the buyer when
// settlement fails after the funds were taken. Payout sends withdrawn
// earnings to the seller; it runs inside the drain transaction, so an error
// aborts the withdrawal with the ledger untouched.
type TransferBackend interface {
	Encumber(ctx context.Context, kind model.AssetKind, from string, amount uint64) (*TransferHandle, error)
	Release(ctx context.Context, handle *TransferHandle, to string) error
	Payout(ctx context.Context, kind model.AssetKind, to string, amount uint64) (*TransferHandle, error)
}

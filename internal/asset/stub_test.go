package asset

import (
	"context"
	"testing"

	"github.com/dualpay/market-backend/internal/model"
)

func TestStubBackendEscrowAccounting(t *testing.T) {
	ctx := context.Background()
	b := NewStubBackend(nil)

	h, err := b.Encumber(ctx, model.AssetPrimary, "buyer-1", 3_000_000)
	if err != nil {
		t.Fatalf("encumber: %v", err)
	}
	if h.ID == "" {
		t.Fatal("expected transfer ref")
	}
	if got := b.Escrowed(model.AssetPrimary); got != 3_000_000 {
		t.Fatalf("escrow=%d want=3000000", got)
	}
	if got := b.Escrowed(model.AssetSecondary); got != 0 {
		t.Fatalf("secondary escrow=%d want=0", got)
	}

	if _, err := b.Payout(ctx, model.AssetPrimary, "seller-1", 3_000_000); err != nil {
		t.Fatalf("payout: %v", err)
	}
	if got := b.Escrowed(model.AssetPrimary); got != 0 {
		t.Fatalf("escrow after payout=%d want=0", got)
	}

	if _, err := b.Payout(ctx, model.AssetPrimary, "seller-1", 1); err == nil {
		t.Fatal("expected payout from empty escrow to fail")
	}
}

func TestStubBackendRelease(t *testing.T) {
	ctx := context.Background()
	b := NewStubBackend(nil)

	h, err := b.Encumber(ctx, model.AssetSecondary, "buyer-1", 500)
	if err != nil {
		t.Fatalf("encumber: %v", err)
	}
	if err := b.Release(ctx, h, "buyer-1"); err != nil {
		t.Fatalf("release: %v", err)
	}
	if got := b.Escrowed(model.AssetSecondary); got != 0 {
		t.Fatalf("escrow=%d want=0", got)
	}
	if err := b.Release(ctx, h, "buyer-1"); err == nil {
		t.Fatal("expected double release to fail")
	}
}

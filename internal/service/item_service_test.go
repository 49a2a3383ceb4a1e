package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dualpay/market-backend/internal/apperr"
)

func TestItemServiceCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newFakeItemRepo())

	for want := uint64(1); want <= 3; want++ {
		item, err := svc.Create(ctx, "Widget", "A widget", 1_000_000, 10, "seller-a")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if item.ID != want {
			t.Fatalf("id=%d want=%d", item.ID, want)
		}
		next, err := svc.NextID(ctx)
		if err != nil {
			t.Fatalf("next id: %v", err)
		}
		if next != want+1 {
			t.Fatalf("nextId=%d want=%d", next, want+1)
		}
	}
}

func TestItemServiceNextIDBeforeAnyCreate(t *testing.T) {
	svc := NewItemService(newFakeItemRepo())
	next, err := svc.NextID(context.Background())
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if next != 1 {
		t.Fatalf("nextId=%d want=1", next)
	}
}

func TestItemServiceCreateValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		itemName    string
		description string
		unitPrice   uint64
		quantity    uint64
	}{
		{"zero price", "Widget", "desc", 0, 10},
		{"zero quantity", "Widget", "desc", 100, 0},
		{"empty name", "", "desc", 100, 10},
		{"empty description", "Widget", "", 100, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeItemRepo()
			svc := NewItemService(repo)
			_, err := svc.Create(ctx, tt.itemName, tt.description, tt.unitPrice, tt.quantity, "seller-a")
			if !errors.Is(err, apperr.ErrInvalidListing) {
				t.Fatalf("err=%v want=ErrInvalidListing", err)
			}
			// a rejected create must not advance the counter
			if next, _ := svc.NextID(ctx); next != 1 {
				t.Fatalf("nextId=%d want=1 after rejected create", next)
			}
		})
	}
}

func TestItemServiceCreateThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newFakeItemRepo())

	created, err := svc.Create(ctx, "Trail Backpack", "28L pack", 9_900_000, 2, "seller-b")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Trail Backpack" || got.Description != "28L pack" ||
		got.UnitPrice != 9_900_000 || got.Quantity != 2 || got.SellerUID != "seller-b" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.Active {
		t.Fatal("new item must be active")
	}
}

func TestItemServiceGetUnknown(t *testing.T) {
	svc := NewItemService(newFakeItemRepo())
	_, err := svc.Get(context.Background(), 999)
	if !errors.Is(err, apperr.ErrItemNotFound) {
		t.Fatalf("err=%v want=ErrItemNotFound", err)
	}
}

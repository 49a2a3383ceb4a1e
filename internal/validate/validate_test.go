package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/dualpay/market-backend/internal/apperr"
	"github.com/dualpay/market-backend/internal/model"
)

func TestListing(t *testing.T) {
	tests := []struct {
		name        string
		itemName    string
		description string
		unitPrice   uint64
		quantity    uint64
		wantErr     error
	}{
		{"valid", "Widget", "A fine widget", 1_000_000, 10, nil},
		{"empty name", "", "desc", 100, 1, apperr.ErrInvalidListing},
		{"empty description", "Widget", "", 100, 1, apperr.ErrInvalidListing},
		{"name too long", strings.Repeat("a", 101), "desc", 100, 1, apperr.ErrInvalidListing},
		{"name at limit", strings.Repeat("a", 100), "desc", 100, 1, nil},
		{"multibyte name at limit", strings.Repeat("あ", 100), "desc", 100, 1, nil},
		{"multibyte name too long", strings.Repeat("あ", 101), "desc", 100, 1, apperr.ErrInvalidListing},
		{"multibyte description at limit", "Widget", strings.Repeat("é", 200), 100, 1, nil},
		{"description too long", "Widget", strings.Repeat("d", 201), 100, 1, apperr.ErrInvalidListing},
		{"description at limit", "Widget", strings.Repeat("d", 200), 100, 1, nil},
		{"zero price", "Widget", "desc", 0, 5, apperr.ErrInvalidListing},
		{"zero quantity", "Widget", "desc", 100, 0, apperr.ErrInvalidListing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Listing(tt.itemName, tt.description, tt.unitPrice, tt.quantity)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v want=%v", err, tt.wantErr)
			}
		})
	}
}

func TestPurchase(t *testing.T) {
	item := &model.Item{ID: 1, Quantity: 5}
	tests := []struct {
		name      string
		item      *model.Item
		requested uint64
		wantErr   error
	}{
		{"valid", item, 3, nil},
		{"full quantity", item, 5, nil},
		{"missing item", nil, 1, apperr.ErrItemNotFound},
		{"zero requested", item, 0, apperr.ErrInsufficientQuantity},
		{"over available", item, 6, apperr.ErrInsufficientQuantity},
		{"exhausted item", &model.Item{ID: 2, Quantity: 0}, 1, apperr.ErrInsufficientQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Purchase(tt.item, tt.requested)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v want=%v", err, tt.wantErr)
			}
		})
	}
}

func TestWithdrawal(t *testing.T) {
	tests := []struct {
		name    string
		entry   *model.SellerEarnings
		wantErr error
	}{
		{"primary only", &model.SellerEarnings{PrimaryBalance: 10}, nil},
		{"secondary only", &model.SellerEarnings{SecondaryBalance: 7}, nil},
		{"both", &model.SellerEarnings{PrimaryBalance: 1, SecondaryBalance: 1}, nil},
		{"both zero", &model.SellerEarnings{}, apperr.ErrNoEarnings},
		{"nil entry", nil, apperr.ErrNoEarnings},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Withdrawal(tt.entry)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v want=%v", err, tt.wantErr)
			}
		})
	}
}

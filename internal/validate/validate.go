// Package validate holds the pure precondition checks shared by the
// registry and settlement services. Functions here never touch state.
package validate

import (
	"unicode/utf8"

	"github.com/dualpay/market-backend/internal/apperr"
	"github.com/dualpay/market-backend/internal/model"
)

const (
	NameMaxLen        = 100
	DescriptionMaxLen = 200
)

// Listing checks creation arguments. Zero price and zero quantity are
// rejected outright; there is no such thing as a free or empty listing.
// Length limits count characters, matching the column sizes.
func Listing(name, description string, unitPrice, quantity uint64) error {
	if name == "" || utf8.RuneCountInString(name) > NameMaxLen {
		return apperr.ErrInvalidListing
	}
	if description == "" || utf8.RuneCountInString(description) > DescriptionMaxLen {
		return apperr.ErrInvalidListing
	}
	if unitPrice == 0 || quantity == 0 {
		return apperr.ErrInvalidListing
	}
	return nil
}

// Purchase checks that the item exists and can cover the requested quantity.
// Eligibility is governed by Quantity alone; Active is informational.
func Purchase(item *model.Item, requested uint64) error {
	if item == nil {
		return apperr.ErrItemNotFound
	}
	if requested == 0 || requested > item.Quantity {
		return apperr.ErrInsufficientQuantity
	}
	return nil
}

// Withdrawal checks that at least one balance is non-zero.
func Withdrawal(entry *model.SellerEarnings) error {
	if entry == nil || (entry.PrimaryBalance == 0 && entry.SecondaryBalance == 0) {
		return apperr.ErrNoEarnings
	}
	return nil
}

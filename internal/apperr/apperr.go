// Package apperr defines the coded domain errors surfaced to API clients.
// The numeric codes are part of the wire contract and must not be renumbered.
package apperr

import "errors"

// Error is a caller-recoverable domain error. Code is the stable numeric
// identifier clients match on; Key is the machine-readable string form.
type Error struct {
	Code    uint32
	Key     string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	// ErrInvalidListing rejects listing creation with empty or oversized
	// text, a zero price, or a zero quantity.
	ErrInvalidListing = &Error{Code: 101, Key: "invalid_listing", Message: "invalid listing parameters"}

	// ErrItemNotFound rejects operations referencing an unknown item id.
	ErrItemNotFound = &Error{Code: 102, Key: "item_not_found", Message: "item not found"}

	// ErrInsufficientQuantity rejects a zero or over-available purchase request.
	ErrInsufficientQuantity = &Error{Code: 103, Key: "insufficient_quantity", Message: "insufficient quantity"}

	// ErrNoEarnings rejects withdrawal when both balances are zero.
	ErrNoEarnings = &Error{Code: 104, Key: "no_earnings", Message: "no earnings to withdraw"}

	// ErrAmountOverflow rejects a purchase whose settlement amount does not
	// fit the numeric domain.
	ErrAmountOverflow = &Error{Code: 105, Key: "amount_overflow", Message: "settlement amount overflows"}
)

// From extracts the domain error from err, if any.
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

package model

// AssetKind selects which of the two supported settlement assets a payment
// uses. There is no default: callers must choose one explicitly.
type AssetKind string

const (
	AssetPrimary   AssetKind = "primary"
	AssetSecondary AssetKind = "secondary"
)

func (k AssetKind) Valid() bool {
	return k == AssetPrimary || k == AssetSecondary
}

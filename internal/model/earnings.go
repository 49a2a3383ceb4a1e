package model

import "time"

// SellerEarnings holds a seller's accrued, not-yet-withdrawn balances, one
// per asset kind. Rows are created lazily on first credit; a missing row
// reads as (0, 0).
type SellerEarnings struct {
	UID              string    `gorm:"column:uid;primaryKey;size:128"`
	PrimaryBalance   uint64    `gorm:"column:primary_balance;not null;default:0"`
	SecondaryBalance uint64    `gorm:"column:secondary_balance;not null;default:0"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (SellerEarnings) TableName() string {
	return "seller_earnings"
}

// Balance returns the accrued amount for one asset kind.
func (e *SellerEarnings) Balance(kind AssetKind) uint64 {
	if kind == AssetSecondary {
		return e.SecondaryBalance
	}
	return e.PrimaryBalance
}

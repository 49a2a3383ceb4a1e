package model

import "time"

// Purchase is a settlement receipt written in the same transaction that
// decrements inventory and credits the seller's earnings.
type Purchase struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Reference   string    `gorm:"size:36;uniqueIndex;not null"`
	ItemID      uint64    `gorm:"column:item_id;index;not null"`
	BuyerUID    string    `gorm:"column:buyer_uid;size:128;index;not null"`
	SellerUID   string    `gorm:"column:seller_uid;size:128;index;not null"`
	Quantity    uint64    `gorm:"not null"`
	UnitPrice   uint64    `gorm:"column:unit_price;not null"`
	Amount      uint64    `gorm:"not null"`
	Asset       AssetKind `gorm:"size:16;not null"`
	TransferRef string    `gorm:"column:transfer_ref;size:64"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Purchase) TableName() string {
	return "purchases"
}

package model

import "time"

// Item is a listing. IDs are assigned from MarketState, not AUTO_INCREMENT,
// so the next id stays observable and only advances on successful creation.
// Items are never deleted; an exhausted listing keeps its row with Active
// false and Quantity 0.
type Item struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement:false"`
	Name        string    `gorm:"size:100;not null"`
	Description string    `gorm:"size:200;not null"`
	UnitPrice   uint64    `gorm:"column:unit_price;not null"`
	Quantity    uint64    `gorm:"not null"`
	SellerUID   string    `gorm:"column:seller_uid;size:128;index;not null"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Item) TableName() string {
	return "items"
}

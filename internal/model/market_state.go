package model

// MarketState is the single-row table backing the listing id counter.
// NextItemID starts at 1 and is bumped only inside a committed create.
type MarketState struct {
	ID         uint32 `gorm:"primaryKey"`
	NextItemID uint64 `gorm:"column:next_item_id;not null;default:1"`
}

// MarketStateRowID is the fixed primary key of the counter row.
const MarketStateRowID uint32 = 1

func (MarketState) TableName() string {
	return "market_state"
}

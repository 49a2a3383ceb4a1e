package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dualpay/market-backend/internal/model"
)

type ItemRepository interface {
	// Create assigns the next listing id and stores the item. The id
	// counter and the insert commit together; a failed insert leaves the
	// counter untouched.
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id uint64) (*model.Item, error)
	List(ctx context.Context, limit, offset int) ([]model.Item, int64, error)
	ListBySeller(ctx context.Context, sellerUID string) ([]model.Item, error)
	// NextID reports the id the next successful Create will assign,
	// without side effects.
	NextID(ctx context.Context) (uint64, error)
}

type itemRepository struct {
	db *gorm.DB
}

var ErrDBNotReady = errors.New("database not initialized")

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var state model.MarketState
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&model.MarketState{ID: model.MarketStateRowID}).
			Attrs(&model.MarketState{NextItemID: 1}).
			FirstOrCreate(&state).Error; err != nil {
			return err
		}
		item.ID = state.NextItemID
		item.Active = true
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		state.NextItemID++
		return tx.Save(&state).Error
	})
}

func (r *itemRepository) FindByID(ctx context.Context, id uint64) (*model.Item, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var item model.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) List(ctx context.Context, limit, offset int) ([]model.Item, int64, error) {
	if r.db == nil {
		return nil, 0, ErrDBNotReady
	}
	var (
		items []model.Item
		total int64
	)
	if err := r.db.WithContext(ctx).Model(&model.Item{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.WithContext(ctx).
		Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *itemRepository) ListBySeller(ctx context.Context, sellerUID string) ([]model.Item, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Where("seller_uid = ?", sellerUID).
		Order("id desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) NextID(ctx context.Context) (uint64, error) {
	if r.db == nil {
		return 0, ErrDBNotReady
	}
	var state model.MarketState
	err := r.db.WithContext(ctx).
		Where(&model.MarketState{ID: model.MarketStateRowID}).
		First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return state.NextItemID, nil
}

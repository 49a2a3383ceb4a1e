package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dualpay/market-backend/internal/apperr"
	"github.com/dualpay/market-backend/internal/model"
)

type PurchaseRepository interface {
	// Settle applies one purchase as a single transaction: decrement the
	// item's quantity (flipping Active at zero), credit the seller's
	// earnings for the paid asset, and insert the receipt. The quantity is
	// re-checked under the item row lock; a concurrent purchase that
	// emptied the listing first surfaces as ErrInsufficientQuantity with
	// nothing written.
	Settle(ctx context.Context, p *model.Purchase) error
	FindByReference(ctx context.Context, ref string) (*model.Purchase, error)
	ListByBuyer(ctx context.Context, buyerUID string) ([]model.Purchase, error)
	ListBySeller(ctx context.Context, sellerUID string) ([]model.Purchase, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Settle(ctx context.Context, p *model.Purchase) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item model.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, p.ItemID).Error; err != nil {
			return err
		}
		if p.Quantity > item.Quantity {
			return apperr.ErrInsufficientQuantity
		}
		item.Quantity -= p.Quantity
		item.Active = item.Quantity > 0
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		if err := creditTx(tx, p.SellerUID, p.Asset, p.Amount); err != nil {
			return err
		}
		return tx.Create(p).Error
	})
}

func (r *purchaseRepository) FindByReference(ctx context.Context, ref string) (*model.Purchase, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var p model.Purchase
	if err := r.db.WithContext(ctx).Where("reference = ?", ref).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *purchaseRepository) ListByBuyer(ctx context.Context, buyerUID string) ([]model.Purchase, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var list []model.Purchase
	if err := r.db.WithContext(ctx).
		Where("buyer_uid = ?", buyerUID).
		Order("id desc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *purchaseRepository) ListBySeller(ctx context.Context, sellerUID string) ([]model.Purchase, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var list []model.Purchase
	if err := r.db.WithContext(ctx).
		Where("seller_uid = ?", sellerUID).
		Order("id desc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

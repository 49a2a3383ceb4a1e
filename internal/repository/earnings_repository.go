package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dualpay/market-backend/internal/apperr"
	"github.com/dualpay/market-backend/internal/model"
)

type EarningsRepository interface {
	// Get returns the seller's entry, a zero-balance one if none exists.
	// It never writes.
	Get(ctx context.Context, uid string) (*model.SellerEarnings, error)
	// Credit adds amount to the balance of kind, creating the row on first
	// credit.
	Credit(ctx context.Context, uid string, kind model.AssetKind, amount uint64) error
	// Drain atomically reads both balances, runs payout with the pre-reset
	// values, and zeroes the row. A payout error rolls everything back, so
	// a failed withdrawal leaves the ledger exactly as it was. An entry
	// that is already all-zero (or missing) fails with ErrNoEarnings under
	// the row lock, so a withdrawal racing a concurrent drain cannot
	// report success with nothing paid out.
	Drain(ctx context.Context, uid string, payout func(primary, secondary uint64) error) (uint64, uint64, error)
}

type earningsRepository struct {
	db *gorm.DB
}

func NewEarningsRepository(db *gorm.DB) EarningsRepository {
	return &earningsRepository{db: db}
}

func (r *earningsRepository) Get(ctx context.Context, uid string) (*model.SellerEarnings, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var e model.SellerEarnings
	err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.SellerEarnings{UID: uid}, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *earningsRepository) Credit(ctx context.Context, uid string, kind model.AssetKind, amount uint64) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return creditTx(r.db.WithContext(ctx), uid, kind, amount)
}

// creditTx is shared with the settlement transaction in purchase_repository.
func creditTx(tx *gorm.DB, uid string, kind model.AssetKind, amount uint64) error {
	column := "primary_balance"
	entry := model.SellerEarnings{UID: uid, PrimaryBalance: amount}
	if kind == model.AssetSecondary {
		column = "secondary_balance"
		entry = model.SellerEarnings{UID: uid, SecondaryBalance: amount}
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoUpdates: clause.Assignments(map[string]interface{}{column: gorm.Expr(column+" + ?", amount)}),
	}).Create(&entry).Error
}

func (r *earningsRepository) Drain(ctx context.Context, uid string, payout func(primary, secondary uint64) error) (uint64, uint64, error) {
	if r.db == nil {
		return 0, 0, ErrDBNotReady
	}
	var primary, secondary uint64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e model.SellerEarnings
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("uid = ?", uid).
			First(&e).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNoEarnings
			}
			return err
		}
		primary, secondary = e.PrimaryBalance, e.SecondaryBalance
		if primary == 0 && secondary == 0 {
			return apperr.ErrNoEarnings
		}
		if payout != nil {
			if err := payout(primary, secondary); err != nil {
				return err
			}
		}
		e.PrimaryBalance = 0
		e.SecondaryBalance = 0
		return tx.Save(&e).Error
	})
	if err != nil {
		return 0, 0, err
	}
	return primary, secondary, nil
}

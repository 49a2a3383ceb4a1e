package service

import (
	"context"
	"errors"
	"math/bits"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dualpay/market-backend/internal/apperr"
	"github.com/dualpay/market-backend/internal/asset"
	"github.com/dualpay/market-backend/internal/model"
	"github.com/dualpay/market-backend/internal/repository"
	"github.com/dualpay/market-backend/internal/validate"
)

// Withdrawal reports one completed withdrawal: the amounts drained per asset
// kind and the backend references for each non-zero payout.
type Withdrawal struct {
	PrimaryAmount   uint64
	SecondaryAmount uint64
	PrimaryRef      string
	SecondaryRef    string
}

type SettlementService interface {
	// Buy settles a purchase: it validates, encumbers the buyer's funds at
	// the transfer backend, then applies inventory decrement, earnings
	// credit, and receipt insert as one transaction.
	Buy(ctx context.Context, itemID, quantity uint64, kind model.AssetKind, buyerUID string) (*model.Purchase, error)
	// Withdraw drains the seller's earnings entry and pays out each
	// non-zero balance in its asset kind.
	Withdraw(ctx context.Context, sellerUID string) (*Withdrawal, error)
	Earnings(ctx context.Context, uid string) (*model.SellerEarnings, error)
	ListByBuyer(ctx context.Context, buyerUID string) ([]model.Purchase, error)
	ListBySeller(ctx context.Context, sellerUID string) ([]model.Purchase, error)
}

type settlementService struct {
	items     repository.ItemRepository
	earnings  repository.EarningsRepository
	purchases repository.PurchaseRepository
	transfers asset.TransferBackend
}

func NewSettlementService(items repository.ItemRepository, earnings repository.EarningsRepository, purchases repository.PurchaseRepository, transfers asset.TransferBackend) SettlementService {
	return &settlementService{items: items, earnings: earnings, purchases: purchases, transfers: transfers}
}

func (s *settlementService) Buy(ctx context.Context, itemID, quantity uint64, kind model.AssetKind, buyerUID string) (*model.Purchase, error) {
	if buyerUID == "" {
		return nil, errors.New("buyer is required")
	}
	if !kind.Valid() {
		return nil, errors.New("unknown asset kind")
	}
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrItemNotFound
		}
		return nil, err
	}
	if err := validate.Purchase(item, quantity); err != nil {
		return nil, err
	}
	amount, err := settlementAmount(quantity, item.UnitPrice)
	if err != nil {
		return nil, err
	}

	// Buyer funds must be in custody before any core state changes.
	handle, err := s.transfers.Encumber(ctx, kind, buyerUID, amount)
	if err != nil {
		return nil, err
	}

	p := &model.Purchase{
		Reference:   uuid.NewString(),
		ItemID:      item.ID,
		BuyerUID:    buyerUID,
		SellerUID:   item.SellerUID,
		Quantity:    quantity,
		UnitPrice:   item.UnitPrice,
		Amount:      amount,
		Asset:       kind,
		TransferRef: handle.ID,
	}
	if err := s.purchases.Settle(ctx, p); err != nil {
		// Settlement rolled back; return the encumbered funds.
		if relErr := s.transfers.Release(ctx, handle, buyerUID); relErr != nil {
			return nil, errors.Join(err, relErr)
		}
		return nil, err
	}
	return p, nil
}

func (s *settlementService) Withdraw(ctx context.Context, sellerUID string) (*Withdrawal, error) {
	if sellerUID == "" {
		return nil, errors.New("seller is required")
	}
	entry, err := s.earnings.Get(ctx, sellerUID)
	if err != nil {
		return nil, err
	}
	// Check before draining: a no-op withdrawal must not touch the ledger.
	if err := validate.Withdrawal(entry); err != nil {
		return nil, err
	}

	var w Withdrawal
	_, _, err = s.earnings.Drain(ctx, sellerUID, func(primary, secondary uint64) error {
		if primary > 0 {
			h, err := s.transfers.Payout(ctx, model.AssetPrimary, sellerUID, primary)
			if err != nil {
				return err
			}
			w.PrimaryAmount, w.PrimaryRef = primary, h.ID
		}
		if secondary > 0 {
			h, err := s.transfers.Payout(ctx, model.AssetSecondary, sellerUID, secondary)
			if err != nil {
				return err
			}
			w.SecondaryAmount, w.SecondaryRef = secondary, h.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *settlementService) Earnings(ctx context.Context, uid string) (*model.SellerEarnings, error) {
	return s.earnings.Get(ctx, uid)
}

func (s *settlementService) ListByBuyer(ctx context.Context, buyerUID string) ([]model.Purchase, error) {
	if buyerUID == "" {
		return nil, errors.New("buyer is required")
	}
	return s.purchases.ListByBuyer(ctx, buyerUID)
}

func (s *settlementService) ListBySeller(ctx context.Context, sellerUID string) ([]model.Purchase, error) {
	if sellerUID == "" {
		return nil, errors.New("seller is required")
	}
	return s.purchases.ListBySeller(ctx, sellerUID)
}

// settlementAmount computes quantity * unitPrice, rejecting overflow.
func settlementAmount(quantity, unitPrice uint64) (uint64, error) {
	hi, lo := bits.Mul64(quantity, unitPrice)
	if hi != 0 {
		return 0, apperr.ErrAmountOverflow
	}
	return lo, nil
}

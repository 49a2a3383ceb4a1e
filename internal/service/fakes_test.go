package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/dualpay/market-backend/internal/apperr"
	"github.com/dualpay/market-backend/internal/model"
)

// In-memory repository fakes mirroring the MySQL implementations' contracts.

type fakeItemRepo struct {
	items  map[uint64]*model.Item
	nextID uint64
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uint64]*model.Item), nextID: 1}
}

func (r *fakeItemRepo) Create(ctx context.Context, item *model.Item) error {
	item.ID = r.nextID
	item.Active = true
	cp := *item
	r.items[item.ID] = &cp
	r.nextID++
	return nil
}

func (r *fakeItemRepo) FindByID(ctx context.Context, id uint64) (*model.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *fakeItemRepo) List(ctx context.Context, limit, offset int) ([]model.Item, int64, error) {
	out := make([]model.Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

func (r *fakeItemRepo) ListBySeller(ctx context.Context, sellerUID string) ([]model.Item, error) {
	var out []model.Item
	for _, item := range r.items {
		if item.SellerUID == sellerUID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) NextID(ctx context.Context) (uint64, error) {
	return r.nextID, nil
}

type fakeEarningsRepo struct {
	entries map[string]*model.SellerEarnings
}

func newFakeEarningsRepo() *fakeEarningsRepo {
	return &fakeEarningsRepo{entries: make(map[string]*model.SellerEarnings)}
}

func (r *fakeEarningsRepo) Get(ctx context.Context, uid string) (*model.SellerEarnings, error) {
	e, ok := r.entries[uid]
	if !ok {
		return &model.SellerEarnings{UID: uid}, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEarningsRepo) Credit(ctx context.Context, uid string, kind model.AssetKind, amount uint64) error {
	e, ok := r.entries[uid]
	if !ok {
		e = &model.SellerEarnings{UID: uid}
		r.entries[uid] = e
	}
	if kind == model.AssetSecondary {
		e.SecondaryBalance += amount
	} else {
		e.PrimaryBalance += amount
	}
	return nil
}

func (r *fakeEarningsRepo) Drain(ctx context.Context, uid string, payout func(primary, secondary uint64) error) (uint64, uint64, error) {
	e, ok := r.entries[uid]
	if !ok {
		return 0, 0, apperr.ErrNoEarnings
	}
	primary, secondary := e.PrimaryBalance, e.SecondaryBalance
	if primary == 0 && secondary == 0 {
		return 0, 0, apperr.ErrNoEarnings
	}
	if payout != nil {
		if err := payout(primary, secondary); err != nil {
			return 0, 0, err
		}
	}
	e.PrimaryBalance = 0
	e.SecondaryBalance = 0
	return primary, secondary, nil
}

type fakePurchaseRepo struct {
	items     *fakeItemRepo
	earnings  *fakeEarningsRepo
	settled   []model.Purchase
	settleErr error
}

func newFakePurchaseRepo(items *fakeItemRepo, earnings *fakeEarningsRepo) *fakePurchaseRepo {
	return &fakePurchaseRepo{items: items, earnings: earnings}
}

func (r *fakePurchaseRepo) Settle(ctx context.Context, p *model.Purchase) error {
	if r.settleErr != nil {
		return r.settleErr
	}
	item, ok := r.items.items[p.ItemID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if p.Quantity > item.Quantity {
		return apperr.ErrInsufficientQuantity
	}
	item.Quantity -= p.Quantity
	item.Active = item.Quantity > 0
	if err := r.earnings.Credit(ctx, p.SellerUID, p.Asset, p.Amount); err != nil {
		return err
	}
	p.ID = uint64(len(r.settled) + 1)
	r.settled = append(r.settled, *p)
	return nil
}

func (r *fakePurchaseRepo) FindByReference(ctx context.Context, ref string) (*model.Purchase, error) {
	for i := range r.settled {
		if r.settled[i].Reference == ref {
			cp := r.settled[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePurchaseRepo) ListByBuyer(ctx context.Context, buyerUID string) ([]model.Purchase, error) {
	var out []model.Purchase
	for i := range r.settled {
		if r.settled[i].BuyerUID == buyerUID {
			out = append(out, r.settled[i])
		}
	}
	return out, nil
}

func (r *fakePurchaseRepo) ListBySeller(ctx context.Context, sellerUID string) ([]model.Purchase, error) {
	var out []model.Purchase
	for i := range r.settled {
		if r.settled[i].SellerUID == sellerUID {
			out = append(out, r.settled[i])
		}
	}
	return out, nil
}

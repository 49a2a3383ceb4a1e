package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dualpay/market-backend/internal/apperr"
	"github.com/dualpay/market-backend/internal/model"
	"github.com/dualpay/market-backend/internal/repository"
	"github.com/dualpay/market-backend/internal/validate"
)

type ItemService interface {
	Create(ctx context.Context, name, description string, unitPrice, quantity uint64, sellerUID string) (*model.Item, error)
	Get(ctx context.Context, id uint64) (*model.Item, error)
	List(ctx context.Context, limit, offset int) ([]model.Item, int64, error)
	ListBySeller(ctx context.Context, sellerUID string) ([]model.Item, error)
	NextID(ctx context.Context) (uint64, error)
}

type itemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) Create(ctx context.Context, name, description string, unitPrice, quantity uint64, sellerUID string) (*model.Item, error) {
	if sellerUID == "" {
		return nil, errors.New("seller is required")
	}
	if err := validate.Listing(name, description, unitPrice, quantity); err != nil {
		return nil, err
	}
	item := &model.Item{
		Name:        name,
		Description: description,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		SellerUID:   sellerUID,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Get(ctx context.Context, id uint64) (*model.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) List(ctx context.Context, limit, offset int) ([]model.Item, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *itemService) ListBySeller(ctx context.Context, sellerUID string) ([]model.Item, error) {
	if sellerUID == "" {
		return nil, errors.New("seller is required")
	}
	return s.repo.ListBySeller(ctx, sellerUID)
}

func (s *itemService) NextID(ctx context.Context) (uint64, error) {
	return s.repo.NextID(ctx)
}

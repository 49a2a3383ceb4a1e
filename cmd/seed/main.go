package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/dualpay/market-backend/internal/config"
	"github.com/dualpay/market-backend/internal/db"
	"github.com/dualpay/market-backend/internal/model"
	"github.com/dualpay/market-backend/internal/repository"
)

type seedListing struct {
	Name        string
	Description string
	UnitPrice   uint64
	Quantity    uint64
	SellerUID   string
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(&model.Item{}, &model.MarketState{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	repo := repository.NewItemRepository(gdb)

	var existing int64
	if err := gdb.WithContext(ctx).Model(&model.Item{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("count items: %w", err)
	}
	if existing > 0 {
		log.Printf("items table already has %d rows; skipping seed", existing)
		return nil
	}

	for _, l := range buildSeedListings() {
		item := &model.Item{
			Name:        l.Name,
			Description: l.Description,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			SellerUID:   l.SellerUID,
		}
		if err := repo.Create(ctx, item); err != nil {
			return fmt.Errorf("create %q: %w", l.Name, err)
		}
		log.Printf("seeded item %d: %s", item.ID, item.Name)
	}
	return nil
}

func buildSeedListings() []seedListing {
	return []seedListing{
		{"Vintage Camera", "Working 35mm rangefinder, light meter included", 45_000_000, 1, "seed-seller-1"},
		{"Mechanical Keyboard", "Hot-swappable 65% board, brown switches", 12_000_000, 5, "seed-seller-1"},
		{"Ceramic Mug Set", "Four hand-thrown stoneware mugs", 3_500_000, 8, "seed-seller-2"},
		{"Trail Backpack", "28L pack, barely used, rain cover included", 9_900_000, 2, "seed-seller-2"},
		{"Desk Lamp", "Articulated arm, warm LED, USB-C powered", 6_200_000, 3, "seed-seller-3"},
	}
}

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/dualpay/market-backend/internal/asset"
	"github.com/dualpay/market-backend/internal/config"
	"github.com/dualpay/market-backend/internal/handler"
	appmw "github.com/dualpay/market-backend/internal/middleware"
	"github.com/dualpay/market-backend/internal/repository"
	"github.com/dualpay/market-backend/internal/service"
)

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB, cfg *config.Config) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173"},
	}))

	itemRepo := repository.NewItemRepository(db)
	earningsRepo := repository.NewEarningsRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)

	var transfers asset.TransferBackend
	switch cfg.AssetBackend {
	case "", "stub":
		transfers = asset.NewStubBackend(slog.Default())
	default:
		return nil, fmt.Errorf("unknown asset backend %q", cfg.AssetBackend)
	}

	itemSvc := service.NewItemService(itemRepo)
	settlementSvc := service.NewSettlementService(itemRepo, earningsRepo, purchaseRepo, transfers)

	itemHandler := handler.NewItemHandler(itemSvc)
	settlementHandler := handler.NewSettlementHandler(settlementSvc)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	api := e.Group("/api")

	// Read-only query surface, safe for arbitrary identities.
	api.GET("/items", itemHandler.List)
	api.GET("/items/next-id", itemHandler.NextID)
	api.GET("/items/:id", itemHandler.Get)
	api.GET("/sellers/:uid/earnings", settlementHandler.Earnings)

	mutating := []struct {
		method, path string
		h            echo.HandlerFunc
	}{
		{http.MethodPost, "/items", itemHandler.Create},
		{http.MethodGet, "/me/items", itemHandler.ListMine},
		{http.MethodGet, "/me/purchases", settlementHandler.ListMine},
		{http.MethodGet, "/me/sales", settlementHandler.ListSales},
		{http.MethodPost, "/items/:id/purchase", settlementHandler.Purchase},
		{http.MethodPost, "/me/withdrawals", settlementHandler.Withdraw},
	}

	if cfg.FirebaseProjectID != "" {
		authMw, err := appmw.NewAuthMiddleware(context.Background(), cfg.FirebaseProjectID)
		if err != nil {
			return nil, err
		}
		for _, r := range mutating {
			api.Add(r.method, r.path, r.h, authMw.RequireAuth)
		}
	} else {
		// Local development without Firebase: trust the X-Debug-UID header.
		for _, r := range mutating {
			api.Add(r.method, r.path, r.h, debugIdentity)
		}
	}

	return &Server{e: e}, nil
}

func debugIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if uid := c.Request().Header.Get("X-Debug-UID"); uid != "" {
			c.Set("uid", uid)
		}
		return next(c)
	}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

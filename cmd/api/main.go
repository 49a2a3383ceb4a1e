package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/dualpay/market-backend/internal/config"
	"github.com/dualpay/market-backend/internal/db"
	"github.com/dualpay/market-backend/internal/model"
	"github.com/dualpay/market-backend/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := conn.AutoMigrate(
		&model.Item{},
		&model.MarketState{},
		&model.SellerEarnings{},
		&model.Purchase{},
	); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	srv, err := server.New(conn, cfg)
	if err != nil {
		log.Fatalf("server init error: %v", err)
	}

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

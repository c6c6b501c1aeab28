package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/stockpile/backend/internal/config"
	"github.com/stockpile/backend/internal/handler"
	"github.com/stockpile/backend/internal/service"
	"github.com/stockpile/backend/internal/store"
)

func main() {
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env")
	}

	cfg := config.Load()
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	ctx := context.Background()

	accounts, items, err := buildStores(ctx, cfg)
	if err != nil {
		log.Error("failed to initialize store", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}

	authService, err := service.NewAuthService(accounts, cfg.Auth)
	if err != nil {
		log.Error("failed to initialize auth service", "error", err)
		os.Exit(1)
	}
	itemService := service.NewItemService(items)

	router := handler.NewRouter(cfg, authService, itemService)

	log.Info("starting server", "port", cfg.Server.Port, "store", cfg.Store.Backend)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func buildStores(ctx context.Context, cfg config.Config) (store.Accounts, store.Items, error) {
	if cfg.Store.Backend == "postgres" {
		pool, err := store.NewPostgresPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		if err := store.EnsureSchema(ctx, pool); err != nil {
			return nil, nil, err
		}
		return store.NewPostgresAccounts(pool), store.NewPostgresItems(pool), nil
	}

	return store.NewMemoryAccounts(), store.NewMemoryItems(), nil
}

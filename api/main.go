package main

import (
	"context"
	"net/http"

	_ "github.com/rpaiva/warehouse-tracker/docs"
	"github.com/rpaiva/warehouse-tracker/internal/auth"
	"github.com/rpaiva/warehouse-tracker/internal/config"
	router "github.com/rpaiva/warehouse-tracker/internal/http"
	"github.com/rpaiva/warehouse-tracker/internal/http/handlers"
	rl "github.com/rpaiva/warehouse-tracker/internal/http/rate_limiter"
	"github.com/rpaiva/warehouse-tracker/internal/inventory"
	"github.com/rpaiva/warehouse-tracker/internal/logger"
	"github.com/rpaiva/warehouse-tracker/internal/repo"
	"github.com/rpaiva/warehouse-tracker/internal/store"
)

// @title Warehouse Tracker API
// @version 1.0
// @description Single-user warehouse inventory tracker: product catalog, stock movement ledger, CSV export and PDF reports.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(cfg.App.Env)
	log.Info().Str("env", cfg.App.Env).Str("app", cfg.App.Name).Msg("starting")

	auth.SetSecret(cfg.JWT.Secret)

	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("could not open store")
	}

	catalogRepo, err := repo.NewCSVCatalogRepository(ctx, st)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load catalog")
	}
	movementRepo, err := repo.NewCSVMovementRepository(ctx, st)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load movement history")
	}

	handlers.SetLogger(log)
	handlers.SetCatalogRepo(catalogRepo)
	handlers.SetMovementRepo(movementRepo)
	handlers.SetInventoryService(inventory.NewService(catalogRepo, movementRepo, st))

	go rl.StartVisitorCleanupLoop()

	r := router.NewRouter()
	log.Info().Str("addr", cfg.HTTP.Addr).Msg("server listening")
	if err := http.ListenAndServe(cfg.HTTP.Addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case "postgres":
		return store.NewPostgresStore(ctx, cfg.Store.DatabaseURL)
	case "redis":
		return store.NewRedisStore(ctx, cfg.Store.RedisAddr, cfg.App.Name)
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return store.NewFileStore(cfg.Store.DataDir)
	}
}

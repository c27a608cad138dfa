package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/inovaantary/inventory-api/api/routes"
	"github.com/inovaantary/inventory-api/internal/importer"
	"github.com/inovaantary/inventory-api/internal/items"
	"github.com/inovaantary/inventory-api/pkg/config"
	"github.com/inovaantary/inventory-api/pkg/db"
	"github.com/inovaantary/inventory-api/pkg/env"
	"github.com/inovaantary/inventory-api/pkg/logger"
	"github.com/inovaantary/inventory-api/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.Mongo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(context.Background()); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	itemRepo := items.NewRepository(dbClient.Collection(items.CollectionName))
	if err := itemRepo.EnsureIndexes(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to ensure indexes", err)
		os.Exit(1)
	}

	itemService, err := items.NewService(items.ServiceParams{
		Repo:   itemRepo,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create item service", err)
		os.Exit(1)
	}

	importService, err := importer.NewService(importer.ServiceParams{
		Items:  itemService,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create import service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, httpMetrics, registry, itemService, importService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

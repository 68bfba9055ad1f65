package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fjod/storefront/internal/cart"
	"github.com/fjod/storefront/internal/catalog"
	"github.com/fjod/storefront/internal/config"
	storefronthttp "github.com/fjod/storefront/internal/http"
	"github.com/fjod/storefront/internal/orderlog"
	"github.com/fjod/storefront/internal/storage"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Fatal("storefront failed", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	configPath := "storefront.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, err := buildStorage(cfg)
	if err != nil {
		return err
	}
	logger.Info("storage ready", zap.String("backend", cfg.Storage))

	cat, closeCatalog, err := buildCatalog(cfg)
	if err != nil {
		return err
	}
	defer closeCatalog()
	logger.Info("catalog ready", zap.String("backend", cfg.Catalog))

	cartStore := cart.NewStore(store, logger)
	orders := orderlog.NewLog(store, logger)
	router := storefronthttp.NewRouter(cat, cartStore, orders, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("storefront listening", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("storefront stopped")
	return nil
}

func buildStorage(cfg config.Config) (storage.Storage, error) {
	switch cfg.Storage {
	case "memory":
		return storage.NewMemory(), nil
	case "file":
		return storage.NewFile(cfg.StorageDir)
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		// Breaker keeps a flaky redis from stalling every request;
		// open-circuit reads degrade to an empty cart.
		return storage.WithBreaker(storage.NewRedis(client), "redis"), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

func buildCatalog(cfg config.Config) (catalog.Catalog, func(), error) {
	switch cfg.Catalog {
	case "memory":
		return catalog.NewSeeded(), func() {}, nil
	case "sqlite":
		db, err := catalog.NewSQLite(cfg.CatalogDBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
			db.Close()
			return nil, nil, err
		}
		products, reviews := catalog.SeedData()
		if err := db.Seed(context.Background(), products, reviews); err != nil {
			db.Close()
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog backend %q", cfg.Catalog)
	}
}

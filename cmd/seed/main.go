package main

import (
	"context"
	"log"
	"os"

	"burgerhouse/internal/config"
	"burgerhouse/internal/kv"
	menurepo "burgerhouse/internal/repository/menu"
	"burgerhouse/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if cfg.StorageBackend == "memory" {
		logger.Fatalf("seeding the memory backend has no effect; set STORAGE_BACKEND to redis or postgres")
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatalf("open %s storage: %v", cfg.StorageBackend, err)
	}
	defer store.Close()

	if err := seed.Apply(ctx, menurepo.NewCatalog(store)); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}

func openStore(ctx context.Context, cfg config.Config) (kv.Store, error) {
	if cfg.StorageBackend == "redis" {
		return kv.NewRedis(cfg.RedisAddr), nil
	}
	return kv.NewPostgres(ctx, cfg.DBConnString)
}

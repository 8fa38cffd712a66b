package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"burgerhouse/internal/config"
	"burgerhouse/internal/importer"
	"burgerhouse/internal/kv"
	menurepo "burgerhouse/internal/repository/menu"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to menu CSV (columns: name, description, price_cents, image_url)")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	if cfg.StorageBackend == "memory" {
		log.Fatalf("importing into the memory backend has no effect; set STORAGE_BACKEND to redis or postgres")
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("open %s storage: %v", cfg.StorageBackend, err)
	}
	defer store.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, menurepo.NewCatalog(store))

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d menu items in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}

func openStore(ctx context.Context, cfg config.Config) (kv.Store, error) {
	if cfg.StorageBackend == "redis" {
		return kv.NewRedis(cfg.RedisAddr), nil
	}
	return kv.NewPostgres(ctx, cfg.DBConnString)
}

package main

import (
	"context"
	"log"
	"os"

	"burgerhouse/internal/config"
	"burgerhouse/internal/kv"
	"burgerhouse/internal/migrate"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	store, err := kv.NewPostgres(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer store.Close()

	if err := migrate.Apply(ctx, store.Pool()); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	logger.Println("migrations applied")
}

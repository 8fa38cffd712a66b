package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"burgerhouse/internal/cep"
	"burgerhouse/internal/config"
	"burgerhouse/internal/httpserver"
	"burgerhouse/internal/kv"
	"burgerhouse/internal/metrics"
	menurepo "burgerhouse/internal/repository/menu"
	orderrepo "burgerhouse/internal/repository/order"
	"burgerhouse/internal/seed"
	cartsvc "burgerhouse/internal/service/cart"
	checkoutsvc "burgerhouse/internal/service/checkout"
	ordersvc "burgerhouse/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatalf("open %s storage: %v", cfg.StorageBackend, err)
	}
	defer store.Close()
	logger.Printf("using %s storage backend", cfg.StorageBackend)

	menuRepo := menurepo.NewCatalog(store)
	if err := ensureMenu(ctx, logger, menuRepo); err != nil {
		logger.Fatalf("ensure menu: %v", err)
	}

	storeMetrics := metrics.NewStoreMetrics()
	orderRepo := orderrepo.NewStore(store)
	carts := cartsvc.NewManager()
	checkoutService := checkoutsvc.New(orderRepo, storeMetrics, cfg.WhatsAppNumber)
	orderService := ordersvc.New(orderRepo, storeMetrics)
	cepClient := cep.NewClient(cfg.ViaCEPBaseURL, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Menu:     menuRepo,
		Carts:    carts,
		Checkout: checkoutService,
		Orders:   orderService,
		CEP:      cepClient,
		KV:       store,
		Hours:    ordersvc.Hours{Opening: cfg.OpeningHour, Closing: cfg.ClosingHour},
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

func openStore(ctx context.Context, cfg config.Config) (kv.Store, error) {
	switch cfg.StorageBackend {
	case "redis":
		return kv.NewRedis(cfg.RedisAddr), nil
	case "postgres":
		return kv.NewPostgres(ctx, cfg.DBConnString)
	default:
		return kv.NewMemory(), nil
	}
}

// ensureMenu seeds the default menu when the catalog is empty, so a fresh
// memory backend serves the storefront without a separate seed run.
func ensureMenu(ctx context.Context, logger *log.Logger, menu *menurepo.Catalog) error {
	items, err := menu.List(ctx)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}
	logger.Printf("menu empty, seeding defaults")
	return seed.Apply(ctx, menu)
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fooddelivery-api/internal/address"
	"fooddelivery-api/internal/cart"
	"fooddelivery-api/internal/catalog"
	"fooddelivery-api/internal/checkout"
	"fooddelivery-api/internal/config"
	"fooddelivery-api/internal/httpserver"
	"fooddelivery-api/internal/order"
	"fooddelivery-api/internal/payment"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	var (
		menu      *catalog.Store
		book      *address.Book
		vault     *payment.Vault
		orders    *order.Ledger
		cartState = cart.New()
	)
	if cfg.SeedDemo {
		menu = catalog.Seed()
		book = address.Seed()
		vault = payment.Seed()
		orders = order.Seed()
	} else {
		menu = catalog.New()
		book = address.New()
		vault = payment.New()
		orders = order.New()
	}

	checkoutSvc := checkout.New(cartState, book, vault, orders, cfg.DeliveryFee)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Catalog:   menu,
		Cart:      cartState,
		Addresses: book,
		Payments:  vault,
		Orders:    orders,
		Checkout:  checkoutSvc,
	}, cfg.CORSOrigins)
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

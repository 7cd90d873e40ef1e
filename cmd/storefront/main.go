// Package main boots the storefront HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/willowmart/storefront/internal/cart"
	"github.com/willowmart/storefront/internal/config"
	httpapi "github.com/willowmart/storefront/internal/http"
	"github.com/willowmart/storefront/internal/obs"
	"github.com/willowmart/storefront/internal/store"
)

func main() {
	obs.InitLogger()
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		obs.Logger.Warn("dotenv_load_failed", "error", err)
	}
	cfg, err := config.Load()
	if err != nil {
		obs.Logger.Error("config_error", "error", err)
		os.Exit(1)
	}
	obs.Logger.Info("service_starting")

	st := store.New()
	st.Seed()
	_, products, categories, _ := st.Counts()
	obs.Logger.Info("store_seeded", "products", products, "categories", categories)

	svc := cart.New(st, cfg.TaxRateDecimal())
	app := httpapi.NewApp(cfg, st, svc)
	mux := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("service_stopped")
}

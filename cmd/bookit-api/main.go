package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/mathomas/bookit-api/internal/application"
	"github.com/mathomas/bookit-api/internal/config"
	httptransport "github.com/mathomas/bookit-api/internal/http"
	"github.com/mathomas/bookit-api/internal/persistence/sqlite"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	pool, err := sqlite.NewConnectionPool(cfg.SQLiteDSN)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := pool.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	if err := sqlite.Migrate(context.Background(), pool); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}
	if err := sqlite.Seed(context.Background(), pool); err != nil {
		logger.Error("failed to seed catalog", "error", err)
		os.Exit(1)
	}

	idGenerator := uuid.NewString
	now := time.Now

	locations := newLocationCatalogAdapter(sqlite.NewLocationRepository(pool))
	bookables := newBookableCatalogAdapter(sqlite.NewBookableRepository(pool))
	bookings := newBookingRepositoryAdapter(sqlite.NewBookingRepository(pool))
	users := newUserRepositoryAdapter(sqlite.NewUserRepository(pool))

	userService := application.NewUserService(users, idGenerator)
	locationService := application.NewLocationService(locations)
	bookableService := application.NewBookableService(locations, bookables, bookings)
	bookingService := application.NewBookingService(bookings, bookables, locations, userService, idGenerator, now)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Ping:      httptransport.NewPingHandler(logger),
		Locations: httptransport.NewLocationHandler(locationService, logger),
		Bookables: httptransport.NewBookableHandler(bookableService, logger),
		Bookings:  httptransport.NewBookingHandler(bookingService, logger),
	})

	protected := httptransport.RequireIdentity(logger)(router)
	handler := httptransport.RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/ping" {
			router.ServeHTTP(w, r)
			return
		}
		protected.ServeHTTP(w, r)
	}))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("bookit API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

// Copyright 2026 The TripDesk Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tripdesk/tripdesk/internal/agency"
	"github.com/tripdesk/tripdesk/internal/audit"
	"github.com/tripdesk/tripdesk/internal/auth"
	"github.com/tripdesk/tripdesk/internal/authz"
	"github.com/tripdesk/tripdesk/internal/config"
	"github.com/tripdesk/tripdesk/internal/observability/logger"
	"github.com/tripdesk/tripdesk/internal/observability/metrics"
	"github.com/tripdesk/tripdesk/internal/observability/tracing"
	"github.com/tripdesk/tripdesk/internal/storage"
	"github.com/tripdesk/tripdesk/internal/store/postgres"
	"github.com/tripdesk/tripdesk/internal/tenant"
	transportHTTP "github.com/tripdesk/tripdesk/internal/transport/http"
	"github.com/tripdesk/tripdesk/internal/trip"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.InitLogger(logger.Config{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: cfg.Observability.ServiceName,
	})
	slog.Info("starting tripdesk back office")

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := runMigrate(cfg); err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Initialize context
	ctx := context.Background()

	// Initialize tracer
	tracer, err := tracing.New(ctx, tracing.Config{
		Enabled:        cfg.Observability.OTELEnabled,
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		SamplingRate:   1.0,
	})
	if err != nil {
		slog.Error("failed to initialize tracer", logger.Error(err))
	}
	defer tracer.Shutdown(ctx)

	// Initialize meter
	_, err = metrics.New(ctx, metrics.Config{
		Enabled: cfg.Observability.OTELEnabled,
	}, cfg.Observability.ServiceName)
	if err != nil {
		slog.Error("failed to initialize meter", logger.Error(err))
	}

	// Initialize database
	db, err := postgres.New(ctx, postgres.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		Database:     cfg.Database.Database,
		SSLMode:      cfg.Database.SSLMode,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		slog.Error("failed to connect to database", logger.Error(err))
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("connected to database")

	// Initialize repositories
	tenantRepo := postgres.NewTenantRepository(db)
	agencyRepo := postgres.NewAgencyRepository(db)
	ageRangeRepo := postgres.NewAgeRangeRepository(db)
	phoneRepo := postgres.NewPhoneRepository(db)
	tripRepo := postgres.NewTripRepository(db)
	imageRepo := postgres.NewTripImageRepository(db)
	itemRepo := postgres.NewTripItemRepository(db)

	// Initialize helpers
	auditLogger := audit.NewSlogLogger()
	tokenVerifier := auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	fileStore, err := storage.NewLocalStore(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		slog.Error("failed to initialize file store", logger.Error(err))
		os.Exit(1)
	}

	// Initialize services
	tenantService := tenant.NewService(tenantRepo, auditLogger)
	tenantResolver := tenant.NewResolver(tenantRepo)
	agencyService := agency.NewService(agencyRepo, auditLogger)
	ageRangeService := agency.NewAgeRangeService(ageRangeRepo, auditLogger)
	phoneService := agency.NewPhoneService(phoneRepo, auditLogger)
	tripService := trip.NewService(tripRepo, auditLogger)
	itemService := trip.NewItemService(itemRepo)
	imageService := trip.NewImageService(imageRepo, tripRepo, fileStore, auditLogger)
	guard := authz.NewGuard(agencyRepo, tripRepo)

	// Rate Limiter
	rateLimiter := transportHTTP.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	// Initialize HTTP handler
	handler := transportHTTP.NewHandler(
		tenantService,
		tenantResolver,
		agencyService,
		ageRangeService,
		phoneService,
		tripService,
		itemService,
		imageService,
		tokenVerifier,
		guard,
		auditLogger,
	)

	// Create router
	router := transportHTTP.NewRouter(handler, rateLimiter)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server
	go func() {
		slog.Info("starting http server", logger.Component("server"), logger.Operation("listen"))
		slog.Info(fmt.Sprintf("listening on %s", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", logger.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", logger.Error(err))
	}

	slog.Info("server stopped")
}

func runMigrate(cfg *config.Config) error {
	ctx := context.Background()
	db, err := postgres.New(ctx, postgres.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		Database:     cfg.Database.Database,
		SSLMode:      cfg.Database.SSLMode,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx, postgres.InitialSchema); err != nil {
		return fmt.Errorf("failed to apply initial schema: %w", err)
	}

	slog.Info("migrations applied")
	return nil
}

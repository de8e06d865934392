package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/driftwoodlabs/paginate"
	"github.com/driftwoodlabs/paginate/internal"
	"github.com/driftwoodlabs/paginate/internal/handler"
	"github.com/driftwoodlabs/paginate/internal/metrics"
	"github.com/driftwoodlabs/paginate/internal/middleware"
	"github.com/driftwoodlabs/paginate/internal/store"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Pick the catalog backend
	var bookStore store.Store
	switch cfg.Store {
	case "postgres":
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}

		if err := store.RunMigrations(db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		logger.Info("Database ready")

		bookStore = store.NewPostgresStore(db)
	default:
		bookStore = store.NewSeededMemoryStore()
		logger.Info("Using seeded in-memory catalog")
	}

	window := paginate.Window{Inner: cfg.InnerWindow, Outer: cfg.OuterWindow}
	catalog := handler.NewCatalogHandler(bookStore, cfg.Store, logger, cfg.PerPage, window)

	// Initialize middleware
	loggingMw := middleware.NewRequestLoggingMiddleware(logger)
	metricsAuth := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics
	mux.Handle("GET /metrics", metricsAuth.Handler(promhttp.Handler()))

	// Catalog
	mux.HandleFunc("GET /books", catalog.List)
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/books", http.StatusFound)
	})

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: loggingMw.Handler(metrics.Middleware(mux)),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env, "store", cfg.Store)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

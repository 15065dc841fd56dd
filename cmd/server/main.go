package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/steadypath/backend/internal/api"
	"github.com/steadypath/backend/internal/engine"
	"github.com/steadypath/backend/internal/infrastructure/config"
	"github.com/steadypath/backend/internal/registry"
	"github.com/steadypath/backend/internal/service"
	"github.com/steadypath/backend/internal/store"

	_ "github.com/steadypath/backend/docs" // generated swagger docs
)

// @title           SteadyPath API
// @version         1.0
// @description     Self-help companion for behavioral addictions — daily check-ins, adaptive psychological tests, streaks, money tracking and a thought diary.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	bank, err := registry.New()
	if err != nil {
		logger.Error("invalid test catalog", "error", err)
		os.Exit(1)
	}

	selector := engine.New(db, db, bank, cfg.Location, logger)
	handler := api.NewHandler(db, selector, cfg.Location, logger)

	reminders := service.NewReminderService(
		db, service.NewLogNotifier(logger),
		cfg.Location, cfg.ReminderInterval, cfg.ReminderWorkers, logger,
	)
	reminders.Start()
	defer reminders.Stop()

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "timezone", cfg.Location.String())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

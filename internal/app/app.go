package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hirepipe/hirepipe/internal/api"
	"github.com/hirepipe/hirepipe/internal/config"
	mw "github.com/hirepipe/hirepipe/internal/middleware"
	"github.com/hirepipe/hirepipe/internal/services"
	"github.com/hirepipe/hirepipe/internal/store"
)

// Run is the application entry point: load configuration, build the store
// and services, and serve HTTP until a shutdown signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting server",
		slog.String("addr", cfg.Server.Addr()),
		slog.String("tenant", cfg.Tenant.Required),
		slog.Int64("seed", cfg.Seed.Value),
		slog.Int("seed_count", cfg.Seed.Count),
	)

	st := store.New(cfg.Seed.Value, cfg.Seed.Count)
	tokens := mw.NewTokenAuth(cfg.Auth.JWTSecret)
	responses := services.NewResponseService(st)
	auth := services.NewAuthService(st, tokens.SignToken)

	router := api.NewRouter(responses, auth, tokens, cfg.Tenant.Required)
	handler := buildHandler(router, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", slog.String("signal", sig.String()))
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down", slog.String("reason", "context canceled"))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func buildHandler(router *api.Router, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLog(logger))
	r.Use(mw.Metrics)
	r.Use(mw.NoStore)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "name": "hirepipe API"})
	})
	r.Get("/version", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"commit":     os.Getenv("HIREPIPE_COMMIT"),
			"build_time": os.Getenv("HIREPIPE_BUILD_TIME"),
		})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Mount("/api", router.Routes())
	return r
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/vaultpass/passcheck/internal/breach"
	"github.com/vaultpass/passcheck/internal/config"
	"github.com/vaultpass/passcheck/internal/handler"
	"github.com/vaultpass/passcheck/internal/metrics"
	"github.com/vaultpass/passcheck/internal/middleware"
	"github.com/vaultpass/passcheck/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logOpts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsProduction() {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, logOpts)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, logOpts)))
	}

	breaches := breach.Default()
	if cfg.BreachListFile != "" {
		breaches, err = breach.LoadFile(cfg.BreachListFile)
		if err != nil {
			slog.Error("loading breach list failed", "path", cfg.BreachListFile, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("breach list loaded", "entries", breaches.Len())

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	analyzerHandler := handler.NewAnalyzerHandler(service.NewAnalyzerService(breaches, m))
	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(m))

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/analyze", analyzerHandler.HandleAnalyze)
		r.Post("/breach", analyzerHandler.HandleBreach)
		r.Post("/compare", analyzerHandler.HandleCompare)
		r.Post("/report", analyzerHandler.HandleReport)
		r.Post("/generate", genHandler.HandleGenerate)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

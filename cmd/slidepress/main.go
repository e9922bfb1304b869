// Package main is the entry point for the SlidePress server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slidepress/internal/ai"
	"slidepress/internal/cache"
	"slidepress/internal/config"
	"slidepress/internal/database"
	"slidepress/internal/export"
	"slidepress/internal/generator"
	"slidepress/internal/handlers"
	"slidepress/internal/render"
	"slidepress/internal/router"
	"slidepress/internal/session"
	"slidepress/internal/storage"
	"slidepress/internal/store"
)

func main() {
	// Structured logger for the whole app.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (sessions, presentation cache, generation guard).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark cookies Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// HTML template renderer for all pages.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Data stores.
	userStore := store.NewUserStore(db)
	historyStore := store.NewHistoryStore(db)

	// S3-compatible export archive (optional — app works without it).
	var storageClient *storage.Client
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		if storageClient != nil {
			slog.Info("s3 export archive connected",
				"endpoint", cfg.S3Endpoint,
				"bucket", cfg.S3Bucket,
			)
		}
	} else {
		slog.Warn("s3 storage not configured — export archiving disabled")
	}

	// AI provider registry with all configured providers. No keys at all
	// means every generation uses the local fallback synthesizer.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"openai": {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
		"gemini": {APIKey: cfg.GeminiKey, Model: cfg.GeminiModel, BaseURL: cfg.GeminiBaseURL},
		"claude": {APIKey: cfg.ClaudeKey, Model: cfg.ClaudeModel, BaseURL: cfg.ClaudeBaseURL},
	})

	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)

	gen := generator.New(aiRegistry)

	// Valkey-backed presentation cache and per-session generation guard.
	presentationCache := cache.NewPresentationCache(valkeyClient, cache.DefaultPresentationTTL)
	generationGuard := cache.NewGenerationGuard(valkeyClient, cache.DefaultGuardTTL)

	// Exporters share the renderer and layout rules with the preview.
	imageFetcher := export.NewFetcher()
	pdfExporter := export.NewPDFExporter(renderer)
	pptxBuilder := export.NewPPTXBuilder(imageFetcher, logger)

	// Handler groups.
	appHandlers := handlers.NewApp(renderer, sessionStore, gen, presentationCache, generationGuard, historyStore)
	authHandlers := handlers.NewAuth(renderer, sessionStore, userStore)
	historyHandlers := handlers.NewHistory(renderer, historyStore, presentationCache)
	exportHandlers := handlers.NewExport(pdfExporter, pptxBuilder, presentationCache, historyStore, storageClient)

	// Chi router with all middleware and routes.
	r := router.New(sessionStore, secureCookies, appHandlers, authHandlers, historyHandlers, exportHandlers)

	// WriteTimeout must accommodate generation requests that wait on LLM
	// responses and export requests that run headless Chrome.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

package main

import (
	"context"
	_ "embed"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordbook/internal/catalog"
	"wordbook/internal/config"
	"wordbook/internal/http"
	"wordbook/internal/importer"
	"wordbook/internal/lookup"
	"wordbook/internal/service"
	"wordbook/internal/storage"
)

//go:embed index.html
var indexHTML string

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	wordRepo := storage.NewWordRepo(db, cfg.StoreSlot)

	// Restore the previous session's words; the cursor always starts at the first card
	cat, err := catalog.New(ctx, wordRepo, logger)
	if err != nil {
		log.Fatalf("Failed to load words: %v", err)
	}
	slog.Info("Catalog loaded", "slot", wordRepo.Slot(), "words", cat.Len())

	lookupBuilder, err := lookup.NewBuilder(cfg.DictionaryURL)
	if err != nil {
		log.Fatalf("Invalid dictionary URL: %v", err)
	}

	imp := importer.New(importer.Options{
		KeepEmptyRows: cfg.ImportKeepEmptyRows,
		SkipHeader:    cfg.ImportSkipHeader,
	})

	vocab := service.NewVocabService(cat, imp, lookupBuilder, cfg.SearchLimit)

	// Create router with dependencies
	deps := &http.Deps{
		VocabService:   vocab,
		Store:          wordRepo,
		IndexHTML:      indexHTML,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}
	router := http.NewRouter(deps)

	addr := ":" + cfg.APIPort
	server := &nethttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	// Start API server
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("Import configuration",
		"keep_empty_rows", cfg.ImportKeepEmptyRows,
		"skip_header", cfg.ImportSkipHeader,
		"max_upload_bytes", cfg.MaxUploadBytes,
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("API server failed to start: %v", err)
	}
	slog.Info("API server stopped")
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// MaxUploadMB is the largest accepted MAX_UPLOAD_MB.
const MaxUploadMB = 1024

// Config holds all configuration for the application.
type Config struct {
	DBPath    string
	APIPort   string
	LogLevel  slog.Level
	LogFormat string // "text" or "json"

	StoreSlot     string
	DictionaryURL string

	ImportKeepEmptyRows bool
	ImportSkipHeader    bool
	MaxUploadBytes      int64

	SearchLimit int
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or a parent, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		DBPath:        getEnv("DB_PATH", "./data/wordbook.db"),
		APIPort:       getEnv("API_PORT", "9000"),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
		StoreSlot:     getEnv("STORE_SLOT", "words"),
		DictionaryURL: getEnv("DICTIONARY_URL", "https://dictionary.cambridge.org/dictionary/english/{word}"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	port, err := strconv.Atoi(cfg.APIPort)
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("API_PORT must be a valid port number, got %q", cfg.APIPort)
	}

	if cfg.ImportKeepEmptyRows, err = getBool("IMPORT_KEEP_EMPTY_ROWS", true); err != nil {
		return nil, err
	}
	if cfg.ImportSkipHeader, err = getBool("IMPORT_SKIP_HEADER", false); err != nil {
		return nil, err
	}

	maxUploadMB, err := getPositiveInt("MAX_UPLOAD_MB", 10)
	if err != nil {
		return nil, err
	}
	if maxUploadMB > MaxUploadMB {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be at most %d, got %d", MaxUploadMB, maxUploadMB)
	}
	cfg.MaxUploadBytes = int64(maxUploadMB) << 20

	if cfg.SearchLimit, err = getPositiveInt("SEARCH_LIMIT", 50); err != nil {
		return nil, err
	}

	// Create the data directory if it doesn't exist
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return v, nil
}

func getPositiveInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return v, nil
}

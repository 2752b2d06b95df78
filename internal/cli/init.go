// Package cli provides common initialization shared by every command:
// env loading, logging, configuration and the SQLite store.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"

	"gobroke/internal/config"
	"gobroke/internal/log"
	"gobroke/internal/storage"
)

// App bundles everything a command needs at runtime.
type App struct {
	Config *config.Config
	Logger *log.Logger
	Store  *storage.SQLiteRepository
}

// Setup loads .env (optional, errors ignored), builds the logger, validates
// configuration and opens the store.
func Setup() (*App, error) {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := log.New(log.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	logger.WithComponent("store").Debug("opening database", "path", cfg.DBPath)
	store, err := storage.NewSQLiteRepository(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store at %s: %w", cfg.DBPath, err)
	}

	return &App{Config: cfg, Logger: logger, Store: store}, nil
}

// Close releases the store.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// Package storage selects a journal.Store implementation from config.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattwhite/moodjournal-go/internal/config"
	"github.com/mattwhite/moodjournal-go/internal/journal"
	"github.com/mattwhite/moodjournal-go/internal/logging"
	"github.com/mattwhite/moodjournal-go/internal/storage/memory"
	"github.com/mattwhite/moodjournal-go/internal/storage/sqlstore"
)

// Open returns the store named by cfg.Driver.
func Open(cfg config.StorageConfig) (journal.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		logging.Debug("using in-memory storage")
		return memory.NewStore(), nil
	case config.DriverSQLite:
		if cfg.DSN != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0755); err != nil {
				return nil, fmt.Errorf("create database dir: %w", err)
			}
		}
		logging.Debug("opening sqlite storage", "path", cfg.DSN)
		return sqlstore.Open(sqlstore.DriverSQLite, cfg.DSN)
	case config.DriverPostgres:
		logging.Debug("opening postgres storage")
		return sqlstore.Open(sqlstore.DriverPostgres, cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"campaign-tracker/internal/config/configs"
)

// NewSQLite opens the SQLite database described by cfg, creating its
// directory and applying migrations when cfg.RunMigrations is set. The caller
// must close the returned handle.
func NewSQLite(ctx context.Context, cfg configs.SQLite) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	if cfg.RunMigrations {
		if err := MigrateSQLite(cfg.Path); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// a single writer keeps SQLite from returning SQLITE_BUSY
	conn.SetMaxOpenConns(1)

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = conn.PingContext(ctxPing); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return conn, nil
}

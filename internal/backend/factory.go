// Package backend builds the campaign slot repository selected by the
// storage configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"campaign-tracker/internal/adapter/file"
	"campaign-tracker/internal/adapter/memory"
	"campaign-tracker/internal/adapter/postgres"
	redisrepo "campaign-tracker/internal/adapter/redis"
	"campaign-tracker/internal/adapter/sqlite"
	"campaign-tracker/internal/config"
	"campaign-tracker/internal/config/configs"
	"campaign-tracker/internal/core/port"
	"campaign-tracker/internal/db"
)

// Result is a ready repository plus the function releasing its resources.
// Cleanup is never nil.
type Result struct {
	Repository port.CampaignRepository
	Cleanup    func()
}

// Factory creates repositories for the configured backend.
type Factory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory.
func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Create opens the backend named by cfg.Storage.Backend.
func (f *Factory) Create(ctx context.Context, cfg config.Config) (*Result, error) {
	switch cfg.Storage.Backend {
	case configs.BackendFile:
		return f.createFile(cfg.Storage)
	case configs.BackendMemory:
		return f.createMemory()
	case configs.BackendSQLite:
		return f.createSQLite(ctx, cfg.Storage, cfg.SQLite)
	case configs.BackendPostgres:
		return f.createPostgres(ctx, cfg.Storage, cfg.Psql)
	case configs.BackendRedis:
		return f.createRedis(ctx, cfg.Storage, cfg.Redis)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Storage.Backend)
	}
}

func (f *Factory) createFile(st configs.Storage) (*Result, error) {
	repo, err := file.NewCampaignRepository(st.FilePath, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file backend: %w", err)
	}
	f.logger.Info("Initialized file backend", "path", st.FilePath)
	return &Result{Repository: repo, Cleanup: func() {}}, nil
}

func (f *Factory) createMemory() (*Result, error) {
	f.logger.Info("Initialized memory backend")
	return &Result{Repository: memory.NewCampaignRepository(), Cleanup: func() {}}, nil
}

func (f *Factory) createSQLite(ctx context.Context, st configs.Storage, cfg configs.SQLite) (*Result, error) {
	conn, err := db.NewSQLite(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite backend: %w", err)
	}
	f.logger.Info("Initialized SQLite backend", "db_path", cfg.Path, "slot", st.Slot)
	return &Result{
		Repository: sqlite.NewCampaignRepository(conn, st.Slot, f.logger),
		Cleanup: func() {
			if err := conn.Close(); err != nil {
				f.logger.Error("close sqlite", "error", err)
			}
		},
	}, nil
}

func (f *Factory) createPostgres(ctx context.Context, st configs.Storage, cfg configs.Postgres) (*Result, error) {
	if cfg.RunMigrations {
		if err := db.MigratePostgres(cfg.Addr.String()); err != nil {
			return nil, fmt.Errorf("failed to migrate postgres: %w", err)
		}
	}
	pool, err := db.NewPostgresPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres backend: %w", err)
	}
	f.logger.Info("Initialized postgres backend", "host", cfg.Addr.Host, "slot", st.Slot)
	return &Result{
		Repository: postgres.NewCampaignRepository(pool, st.Slot, f.logger),
		Cleanup:    pool.Close,
	}, nil
}

func (f *Factory) createRedis(ctx context.Context, st configs.Storage, cfg configs.Redis) (*Result, error) {
	client, err := db.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis backend: %w", err)
	}
	f.logger.Info("Initialized redis backend", "host", cfg.Addr.Host, "key", st.Slot)
	return &Result{
		Repository: redisrepo.NewCampaignRepository(client, st.Slot, f.logger),
		Cleanup: func() {
			if err := client.Close(); err != nil {
				f.logger.Error("close redis", "error", err)
			}
		},
	}, nil
}

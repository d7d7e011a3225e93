package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-tracker/internal/adapter/slot"
	"campaign-tracker/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. The slot is one row of campaign_slots with a JSONB payload.
type CampaignRepository struct {
	pool   *pgxpool.Pool
	name   string
	logger *slog.Logger
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool, name string, logger *slog.Logger) *CampaignRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignRepository{pool: pool, name: name, logger: logger}
}

// ListAll returns the campaigns stored in the slot row.
func (r *CampaignRepository) ListAll(ctx context.Context) ([]domain.Campaign, error) {
	var payload string
	err := r.pool.QueryRow(ctx, `SELECT payload::text FROM campaign_slots WHERE name = $1`, r.name).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return []domain.Campaign{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select slot %s: %w", r.name, err)
	}
	return slot.DecodeOrEmpty(ctx, r.logger, r.name, []byte(payload)), nil
}

// ReplaceAll overwrites the slot row inside a transaction.
func (r *CampaignRepository) ReplaceAll(ctx context.Context, campaigns []domain.Campaign) (err error) {
	data, err := slot.Encode(campaigns)
	if err != nil {
		return fmt.Errorf("encode slot: %w", err)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `
        INSERT INTO campaign_slots (name, payload, updated_at)
        VALUES ($1, $2::jsonb, now())
        ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		r.name, string(data))
	if err != nil {
		err = fmt.Errorf("upsert slot %s: %w", r.name, err)
	}
	return err
}

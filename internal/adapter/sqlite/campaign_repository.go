package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"campaign-tracker/internal/adapter/slot"
	"campaign-tracker/internal/core/domain"
)

// CampaignRepository stores the campaign slot as one row of the
// campaign_slots table in a local SQLite database.
type CampaignRepository struct {
	db     *sql.DB
	name   string
	logger *slog.Logger
}

// NewCampaignRepository returns a repository for the slot called name. The
// schema must already be migrated.
func NewCampaignRepository(db *sql.DB, name string, logger *slog.Logger) *CampaignRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignRepository{db: db, name: name, logger: logger}
}

// ListAll loads the slot row. A missing row is an empty slot.
func (r *CampaignRepository) ListAll(ctx context.Context) ([]domain.Campaign, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM campaign_slots WHERE name = ?`, r.name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return []domain.Campaign{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select slot %s: %w", r.name, err)
	}
	return slot.DecodeOrEmpty(ctx, r.logger, r.name, []byte(payload)), nil
}

// ReplaceAll upserts the slot row with the encoded campaigns.
func (r *CampaignRepository) ReplaceAll(ctx context.Context, campaigns []domain.Campaign) error {
	data, err := slot.Encode(campaigns)
	if err != nil {
		return fmt.Errorf("encode slot: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
        INSERT INTO campaign_slots (name, payload, updated_at)
        VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
        ON CONFLICT (name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		r.name, string(data))
	if err != nil {
		return fmt.Errorf("upsert slot %s: %w", r.name, err)
	}
	return nil
}

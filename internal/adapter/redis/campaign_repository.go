package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"campaign-tracker/internal/adapter/slot"
	"campaign-tracker/internal/core/domain"
)

// CampaignRepository keeps the slot payload under a single Redis key.
type CampaignRepository struct {
	client redis.Cmdable
	key    string
	logger *slog.Logger
}

// NewCampaignRepository returns a repository storing the slot at key.
func NewCampaignRepository(client redis.Cmdable, key string, logger *slog.Logger) *CampaignRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignRepository{client: client, key: key, logger: logger}
}

// ListAll reads the slot key. A missing key is an empty slot.
func (r *CampaignRepository) ListAll(ctx context.Context) ([]domain.Campaign, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.Campaign{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", r.key, err)
	}
	return slot.DecodeOrEmpty(ctx, r.logger, r.key, data), nil
}

// ReplaceAll writes the encoded campaigns to the slot key without expiry.
func (r *CampaignRepository) ReplaceAll(ctx context.Context, campaigns []domain.Campaign) error {
	data, err := slot.Encode(campaigns)
	if err != nil {
		return fmt.Errorf("encode slot: %w", err)
	}
	if err = r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", r.key, err)
	}
	return nil
}

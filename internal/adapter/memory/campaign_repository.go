package memory

import (
	"context"
	"slices"
	"sync"

	"campaign-tracker/internal/core/domain"
)

// CampaignRepository keeps the campaign slot in process memory. It is used by
// tests and by the memory backend.
type CampaignRepository struct {
	mu        sync.Mutex
	campaigns []domain.Campaign
}

// NewCampaignRepository returns a repository pre-filled with seed.
func NewCampaignRepository(seed ...domain.Campaign) *CampaignRepository {
	return &CampaignRepository{campaigns: slices.Clone(seed)}
}

// ListAll returns a copy of the stored campaigns.
func (r *CampaignRepository) ListAll(_ context.Context) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Campaign, len(r.campaigns))
	copy(out, r.campaigns)
	return out, nil
}

// ReplaceAll stores a copy of campaigns.
func (r *CampaignRepository) ReplaceAll(_ context.Context, campaigns []domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns = slices.Clone(campaigns)
	return nil
}

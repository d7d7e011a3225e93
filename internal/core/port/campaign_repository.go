package port

import (
	"context"

	"campaign-tracker/internal/core/domain"
)

// CampaignRepository is the persistent slot holding the whole campaign set.
// It is an outbound port in hexagonal architecture. The slot is always read
// and written as a unit: there are no partial updates and no isolation
// between processes sharing the same slot (last writer wins).
type CampaignRepository interface {
	// ListAll returns every stored campaign. A missing or empty slot yields
	// an empty list. Implementations return copies the caller may modify.
	ListAll(ctx context.Context) ([]domain.Campaign, error)
	// ReplaceAll overwrites the slot with the given campaigns.
	ReplaceAll(ctx context.Context, campaigns []domain.Campaign) error
}

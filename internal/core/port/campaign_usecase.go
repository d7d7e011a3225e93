package port

import (
	"context"
	"errors"

	"campaign-tracker/internal/core/domain"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignUseCase defines the business operations of the tracker. This
// interface represents the primary port into the application domain.
type CampaignUseCase interface {
	// List returns every stored campaign in storage order.
	List(ctx context.Context) ([]domain.Campaign, error)

	// Get returns a single campaign or ErrCampaignNotFound.
	Get(ctx context.Context, id string) (*domain.Campaign, error)

	// Save validates the input, recomputes the profit fields and persists
	// the campaign. An empty ID creates a new campaign with a generated
	// identifier. A known ID replaces that campaign in place. An unknown ID
	// is appended as a new campaign under the supplied identifier.
	Save(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error)

	// Delete removes the campaign. Unknown ids are ignored.
	Delete(ctx context.Context, id string) error

	// Duplicate stores a copy of the campaign under a new identifier and
	// returns it, or ErrCampaignNotFound.
	Duplicate(ctx context.Context, id string) (*domain.Campaign, error)

	// Query returns the filtered and ordered campaign list.
	Query(ctx context.Context, q domain.Query) ([]domain.Campaign, error)

	// Dashboard returns summary metrics and the chart series.
	Dashboard(ctx context.Context) (*Dashboard, error)
}

// Dashboard is the summary view. It is a DTO used by the HTTP layer and does
// not contain domain behaviour.
type Dashboard struct {
	Metrics domain.Metrics
	Series  []domain.SeriesPoint
}

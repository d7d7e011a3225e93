package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase on top of a campaign slot.
// Every mutation reads the whole slot, modifies it and writes it back.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	logger *slog.Logger

	// newID generates campaign identifiers. Replaced in tests.
	newID func() string

	// mu serialises read-modify-write cycles issued by this process. Other
	// processes sharing the slot are not coordinated.
	mu sync.Mutex
}

// NewCampaignUseCase creates a usecase over repo. A nil logger falls back to
// slog.Default.
func NewCampaignUseCase(repo port.CampaignRepository, logger *slog.Logger) *CampaignUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignUseCase{repo: repo, logger: logger, newID: uuid.NewString}
}

// List returns all campaigns in storage order.
func (u *CampaignUseCase) List(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

// Get returns the campaign with the given id.
func (u *CampaignUseCase) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	campaigns, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(campaigns, id)
	if i < 0 {
		return nil, port.ErrCampaignNotFound
	}
	c := campaigns[i]
	return &c, nil
}

// Save validates and persists the campaign, recomputing its profit fields.
func (u *CampaignUseCase) Save(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error) {
	if err := in.Validate(); err != nil {
		return domain.Campaign{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	campaigns, err := u.List(ctx)
	if err != nil {
		return domain.Campaign{}, err
	}

	id := in.ID
	if id == "" {
		id = u.newID()
	}
	saved := in.Build(id)

	if i := indexOf(campaigns, in.ID); in.ID != "" && i >= 0 {
		campaigns[i] = saved
		u.logger.DebugContext(ctx, "campaign updated", slog.String("id", id))
	} else {
		if in.ID != "" {
			u.logger.InfoContext(ctx, "campaign id not found, storing as new", slog.String("id", id))
		}
		campaigns = append(campaigns, saved)
		u.logger.DebugContext(ctx, "campaign created", slog.String("id", id))
	}

	if err = u.repo.ReplaceAll(ctx, campaigns); err != nil {
		return domain.Campaign{}, fmt.Errorf("save campaign %s: %w", id, err)
	}
	return saved, nil
}

// Delete removes the campaign with the given id, if any.
func (u *CampaignUseCase) Delete(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	campaigns, err := u.List(ctx)
	if err != nil {
		return err
	}
	kept := slices.DeleteFunc(campaigns, func(c domain.Campaign) bool { return c.ID == id })
	if err = u.repo.ReplaceAll(ctx, kept); err != nil {
		return fmt.Errorf("delete campaign %s: %w", id, err)
	}
	u.logger.DebugContext(ctx, "campaign deleted", slog.String("id", id))
	return nil
}

// Duplicate appends a copy of the campaign with a new id and returns it.
func (u *CampaignUseCase) Duplicate(ctx context.Context, id string) (*domain.Campaign, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	campaigns, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(campaigns, id)
	if i < 0 {
		return nil, port.ErrCampaignNotFound
	}

	cp := campaigns[i].Duplicate(u.newID())
	campaigns = append(campaigns, cp)
	if err = u.repo.ReplaceAll(ctx, campaigns); err != nil {
		return nil, fmt.Errorf("duplicate campaign %s: %w", id, err)
	}
	u.logger.DebugContext(ctx, "campaign duplicated", slog.String("id", id), slog.String("copy_id", cp.ID))
	return &cp, nil
}

// Query filters and orders all stored campaigns.
func (u *CampaignUseCase) Query(ctx context.Context, q domain.Query) ([]domain.Campaign, error) {
	campaigns, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.QueryCampaigns(campaigns, q), nil
}

// Dashboard aggregates all stored campaigns.
func (u *CampaignUseCase) Dashboard(ctx context.Context) (*port.Dashboard, error) {
	campaigns, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	return &port.Dashboard{
		Metrics: domain.AggregateMetrics(campaigns),
		Series:  domain.ProfitSeries(campaigns),
	}, nil
}

func indexOf(campaigns []domain.Campaign, id string) int {
	return slices.IndexFunc(campaigns, func(c domain.Campaign) bool { return c.ID == id })
}

package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-tracker/internal/core/domain"
)

func TestCampaignRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "campaigns.json")

	repo, err := NewCampaignRepository(path, nil)
	require.NoError(t, err)

	empty, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	c := domain.CampaignInput{
		Name:           "Black Friday",
		StartDate:      "2024-11-20",
		EndDate:        "2024-11-30",
		SaleAmount:     decimal.NewFromInt(150),
		PurchaseAmount: decimal.NewFromInt(100),
	}.Build("a")
	require.NoError(t, repo.ReplaceAll(ctx, []domain.Campaign{c}))

	// a second repository over the same file sees the data
	other, err := NewCampaignRepository(path, nil)
	require.NoError(t, err)
	got, err := other.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Black Friday", got[0].Name)
	assert.True(t, got[0].ProfitPercent.Equal(decimal.NewFromInt(50)))

	require.NoError(t, repo.ReplaceAll(ctx, nil))
	got, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestCampaignRepositoryCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaigns.json")
	require.NoError(t, os.WriteFile(path, []byte("[{broken"), 0o644))

	repo, err := NewCampaignRepository(path, nil)
	require.NoError(t, err)

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

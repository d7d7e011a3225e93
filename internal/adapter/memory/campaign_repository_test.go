package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-tracker/internal/core/domain"
)

func TestCampaignRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewCampaignRepository()

	empty, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	in := []domain.Campaign{{ID: "a", Name: "A"}}
	require.NoError(t, repo.ReplaceAll(ctx, in))
	in[0].Name = "changed by caller"

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)

	got[0].Name = "changed again"
	again, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", again[0].Name)
}

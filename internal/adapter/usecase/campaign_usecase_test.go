package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-tracker/internal/adapter/memory"
	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
	"campaign-tracker/internal/core/port/mocks"
)

func input(name, sale, purchase string) domain.CampaignInput {
	return domain.CampaignInput{
		Name:           name,
		StartDate:      "2024-11-20",
		EndDate:        "2024-11-30",
		CustomerCount:  10,
		SaleAmount:     decimal.RequireFromString(sale),
		PurchaseAmount: decimal.RequireFromString(purchase),
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// TestSaveNewCampaign ensures a campaign without id is appended with a fresh
// id and computed profit fields.
func TestSaveNewCampaign(t *testing.T) {
	repo := memory.NewCampaignRepository()
	svc := NewCampaignUseCase(repo, nil)

	saved, err := svc.Save(context.Background(), input("Black Friday", "150", "100"))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)

	want := domain.ComputeProfit(all[0].SaleAmount, all[0].PurchaseAmount)
	assert.Equal(t, saved.ID, all[0].ID)
	assert.True(t, all[0].ProfitAmount.Equal(want.Amount))
	assert.True(t, all[0].ProfitPercent.Equal(want.Percent))
	assert.True(t, all[0].ProfitPercent.Equal(decimal.NewFromInt(50)))
}

func TestSaveReplacesInPlace(t *testing.T) {
	repo := memory.NewCampaignRepository()
	svc := NewCampaignUseCase(repo, nil)
	svc.newID = sequentialIDs()
	ctx := context.Background()

	first, err := svc.Save(ctx, input("first", "10", "5"))
	require.NoError(t, err)
	_, err = svc.Save(ctx, input("second", "10", "5"))
	require.NoError(t, err)

	edit := first.Input()
	edit.Name = "first, edited"
	edit.SaleAmount = decimal.NewFromInt(80)
	edit.PurchaseAmount = decimal.NewFromInt(100)
	updated, err := svc.Save(ctx, edit)
	require.NoError(t, err)
	assert.Equal(t, "id-1", updated.ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "first, edited", all[0].Name)
	assert.True(t, all[0].ProfitAmount.Equal(decimal.NewFromInt(-20)))
	assert.True(t, all[0].ProfitPercent.Equal(decimal.NewFromInt(-20)))
	assert.Equal(t, "second", all[1].Name)
}

func TestSaveUnknownIDIsAppended(t *testing.T) {
	svc := NewCampaignUseCase(memory.NewCampaignRepository(), nil)
	ctx := context.Background()

	in := input("orphan", "10", "5")
	in.ID = "missing"
	saved, err := svc.Save(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "missing", saved.ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "missing", all[0].ID)
}

func TestSaveRejectsInvalidInput(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := NewCampaignUseCase(repo, nil)

	in := input("bad range", "10", "5")
	in.EndDate = "2024-01-01"
	_, err := svc.Save(context.Background(), in)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, domain.MsgDateRange, err.Error())
}

func TestSaveRecomputesBeforePersist(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := NewCampaignUseCase(repo, nil)
	svc.newID = sequentialIDs()

	repo.EXPECT().ListAll(mock.Anything).Return(nil, nil)
	repo.EXPECT().
		ReplaceAll(mock.Anything, mock.AnythingOfType("[]domain.Campaign")).
		Run(func(ctx context.Context, campaigns []domain.Campaign) {
			require.Len(t, campaigns, 1)
			assert.Equal(t, "id-1", campaigns[0].ID)
			assert.True(t, campaigns[0].ProfitAmount.Equal(decimal.NewFromInt(50)))
			assert.True(t, campaigns[0].ProfitPercent.Equal(decimal.NewFromInt(50)))
		}).
		Return(nil)

	_, err := svc.Save(context.Background(), input("x", "150", "100"))
	require.NoError(t, err)
}

func TestSavePropagatesStorageErrors(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := NewCampaignUseCase(repo, nil)
	boom := errors.New("disk full")

	repo.EXPECT().ListAll(mock.Anything).Return([]domain.Campaign{}, nil)
	repo.EXPECT().ReplaceAll(mock.Anything, mock.Anything).Return(boom)

	_, err := svc.Save(context.Background(), input("x", "1", "1"))
	assert.ErrorIs(t, err, boom)
}

func TestDelete(t *testing.T) {
	svc := NewCampaignUseCase(memory.NewCampaignRepository(), nil)
	svc.newID = sequentialIDs()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.Save(ctx, input(name, "1", "1"))
		require.NoError(t, err)
	}
	require.NoError(t, svc.Delete(ctx, "id-2"))
	require.NoError(t, svc.Delete(ctx, "does-not-exist"))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "id-1", all[0].ID)
	assert.Equal(t, "id-3", all[1].ID)
}

func TestDuplicate(t *testing.T) {
	svc := NewCampaignUseCase(memory.NewCampaignRepository(), nil)
	ctx := context.Background()

	orig, err := svc.Save(ctx, input("Black Friday", "150", "100"))
	require.NoError(t, err)

	cp, err := svc.Duplicate(ctx, orig.ID)
	require.NoError(t, err)
	assert.NotEqual(t, orig.ID, cp.ID)
	assert.Equal(t, "Black Friday"+domain.CopySuffix, cp.Name)
	assert.True(t, cp.ProfitAmount.Equal(orig.ProfitAmount))
	assert.True(t, cp.ProfitPercent.Equal(orig.ProfitPercent))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, cp.ID, all[1].ID)
}

func TestDuplicateNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := NewCampaignUseCase(repo, nil)

	repo.EXPECT().ListAll(mock.Anything).Return([]domain.Campaign{}, nil)

	cp, err := svc.Duplicate(context.Background(), "nope")
	assert.Nil(t, cp)
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestGet(t *testing.T) {
	svc := NewCampaignUseCase(memory.NewCampaignRepository(), nil)
	ctx := context.Background()

	saved, err := svc.Save(ctx, input("x", "1", "1"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Name, got.Name)

	_, err = svc.Get(ctx, "other")
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestQueryAndDashboard(t *testing.T) {
	svc := NewCampaignUseCase(memory.NewCampaignRepository(), nil)
	ctx := context.Background()

	_, err := svc.Save(ctx, input("Black Friday", "150", "100"))
	require.NoError(t, err)
	_, err = svc.Save(ctx, input("Summer", "80", "100"))
	require.NoError(t, err)

	q := domain.DefaultQuery()
	q.Search = "BLACK"
	got, err := svc.Query(ctx, q)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Black Friday", got[0].Name)

	dash, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, dash.Metrics.Count)
	assert.True(t, dash.Metrics.TotalProfit.Equal(decimal.NewFromInt(30)))
	assert.True(t, dash.Metrics.AvgSalePerCustomer.Equal(decimal.RequireFromString("11.5")))
	assert.Len(t, dash.Series, 2)
}

func TestDashboardEmpty(t *testing.T) {
	svc := NewCampaignUseCase(memory.NewCampaignRepository(), nil)
	dash, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, dash.Metrics.Count)
	assert.True(t, dash.Metrics.TotalProfit.IsZero())
	assert.Empty(t, dash.Series)
}

// TestConcurrentSaves ensures concurrent saves through one usecase do not
// lose writes in the read-modify-write cycle.
func TestConcurrentSaves(t *testing.T) {
	svc := NewCampaignUseCase(memory.NewCampaignRepository(), nil)

	count := 20
	var wg sync.WaitGroup
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func(i int) {
			defer wg.Done()
			_, _ = svc.Save(context.Background(), input(fmt.Sprintf("c%d", i), "1", "1"))
		}(i)
	}
	wg.Wait()

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, count)
}

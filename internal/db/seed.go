package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

var demoNames = []string{
	"Black Friday",
	"Christmas Sale",
	"Back to School",
	"Mother's Day",
	"Summer Clearance",
}

// Seed fills an empty slot with demo campaigns spread over the past months.
// It reports whether anything was written; a slot that already holds
// campaigns is left untouched.
func Seed(ctx context.Context, repo port.CampaignRepository) (bool, error) {
	existing, err := repo.ListAll(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	campaigns := make([]domain.Campaign, 0, len(demoNames))
	for i, name := range demoNames {
		start := now.AddDate(0, -2*(len(demoNames)-i), 0)
		end := start.AddDate(0, 0, 7+r.Intn(21))
		purchase := int64(500 + r.Intn(4500))
		// margin between -30% and +49%
		sale := purchase * int64(70+r.Intn(80)) / 100
		in := domain.CampaignInput{
			Name:           name,
			StartDate:      start.Format(time.DateOnly),
			EndDate:        end.Format(time.DateOnly),
			CustomerCount:  int64(10 + r.Intn(200)),
			SaleAmount:     decimal.New(sale, 0),
			PurchaseAmount: decimal.New(purchase, 0),
			Notes:          fmt.Sprintf("demo campaign %d", i+1),
		}
		campaigns = append(campaigns, in.Build(uuid.NewString()))
	}

	if err = repo.ReplaceAll(ctx, campaigns); err != nil {
		return false, err
	}
	return true, nil
}

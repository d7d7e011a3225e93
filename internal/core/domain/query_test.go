package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func campaign(id, name, start, end, sale, purchase string) Campaign {
	return CampaignInput{
		Name:           name,
		StartDate:      start,
		EndDate:        end,
		SaleAmount:     dec(sale),
		PurchaseAmount: dec(purchase),
	}.Build(id)
}

func ids(cs []Campaign) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func fixtures() []Campaign {
	return []Campaign{
		campaign("a", "Black Friday", "2024-11-20", "2024-11-30", "150", "100"),
		campaign("b", "Summer Sale", "2024-01-10", "2024-02-10", "80", "100"),
		campaign("c", "BLACK week", "2024-11-25", "2024-12-02", "300", "100"),
		campaign("d", "Christmas", "2024-12-01", "2024-12-24", "120", "100"),
	}
}

func TestQueryCampaignsDefaultOrder(t *testing.T) {
	got := QueryCampaigns(fixtures(), DefaultQuery())
	assert.Equal(t, []string{"d", "c", "a", "b"}, ids(got))
}

func TestQueryCampaignsSearch(t *testing.T) {
	q := DefaultQuery()
	q.Search = "black"
	got := QueryCampaigns(fixtures(), q)
	assert.Equal(t, []string{"c", "a"}, ids(got))
	for _, c := range got {
		assert.Contains(t, []string{"Black Friday", "BLACK week"}, c.Name)
	}
}

func TestQueryCampaignsDateRange(t *testing.T) {
	q := Query{SortBy: SortByStartDate, Direction: Asc, From: "2024-11-20", To: "2024-12-01"}
	assert.Equal(t, []string{"a"}, ids(QueryCampaigns(fixtures(), q)))

	q = Query{SortBy: SortByEndDate, Direction: Asc, From: "2024-11-01"}
	assert.Equal(t, []string{"a", "c", "d"}, ids(QueryCampaigns(fixtures(), q)))

	q = Query{SortBy: SortByEndDate, Direction: Desc, To: "2024-12-02"}
	assert.Equal(t, []string{"c", "a", "b"}, ids(QueryCampaigns(fixtures(), q)))
}

func TestQueryCampaignsSortByProfit(t *testing.T) {
	q := Query{SortBy: SortByProfitAmount, Direction: Desc}
	assert.Equal(t, []string{"c", "a", "d", "b"}, ids(QueryCampaigns(fixtures(), q)))

	q = Query{SortBy: SortByProfitPercent, Direction: Asc}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(QueryCampaigns(fixtures(), q)))
}

func TestQueryCampaignsStableTies(t *testing.T) {
	records := []Campaign{
		campaign("x", "one", "2024-01-01", "2024-01-02", "10", "5"),
		campaign("y", "two", "2024-01-01", "2024-01-03", "10", "5"),
		campaign("z", "three", "2024-01-01", "2024-01-04", "10", "5"),
	}
	for _, dir := range []Direction{Asc, Desc} {
		got := QueryCampaigns(records, Query{SortBy: SortByProfitAmount, Direction: dir})
		assert.Equal(t, []string{"x", "y", "z"}, ids(got), dir)
	}
}

func TestQueryCampaignsDoesNotModifyInput(t *testing.T) {
	records := fixtures()
	_ = QueryCampaigns(records, Query{SortBy: SortByProfitAmount, Direction: Asc})
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(records))
}

func TestParseSortKeyAndDirection(t *testing.T) {
	k, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortByStartDate, k)

	k, err = ParseSortKey("Profit_Percent")
	require.NoError(t, err)
	assert.Equal(t, SortByProfitPercent, k)

	_, err = ParseSortKey("name")
	assert.Error(t, err)

	d, err := ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, Desc, d)

	d, err = ParseDirection("ASC")
	require.NoError(t, err)
	assert.Equal(t, Asc, d)

	_, err = ParseDirection("up")
	assert.Error(t, err)
}

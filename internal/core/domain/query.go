package domain

import (
	"fmt"
	"slices"
	"strings"
)

// SortKey names the field a campaign list is ordered by.
type SortKey string

const (
	SortByStartDate     SortKey = "start_date"
	SortByEndDate       SortKey = "end_date"
	SortByProfitAmount  SortKey = "profit_amount"
	SortByProfitPercent SortKey = "profit_percent"
)

// Direction is the sort order of a campaign list.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Query describes a filtered, ordered view over campaigns. From and To are
// optional date keys; Search is an optional case-insensitive name fragment.
type Query struct {
	SortBy    SortKey
	Direction Direction
	Search    string
	From      string
	To        string
}

// DefaultQuery lists every campaign, most recent start date first.
func DefaultQuery() Query {
	return Query{SortBy: SortByStartDate, Direction: Desc}
}

// ParseSortKey validates a textual sort key. Empty text selects the start date.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortByStartDate, nil
	case SortByStartDate, SortByEndDate, SortByProfitAmount, SortByProfitPercent:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// ParseDirection validates a textual direction. Empty text selects descending.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return Desc, nil
	case Asc, Desc:
		return d, nil
	default:
		return "", fmt.Errorf("unknown sort direction %q", s)
	}
}

// QueryCampaigns filters by start date lower bound, end date upper bound and
// name, then sorts. The sort is stable: campaigns that compare equal keep
// their input order in both directions. records is not modified.
func QueryCampaigns(records []Campaign, q Query) []Campaign {
	term := strings.ToLower(q.Search)
	out := make([]Campaign, 0, len(records))
	for _, c := range records {
		if q.From != "" && c.StartDate < q.From {
			continue
		}
		if q.To != "" && c.EndDate > q.To {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(c.Name), term) {
			continue
		}
		out = append(out, c)
	}

	cmp := compareBy(q.SortBy)
	if q.Direction == Asc {
		slices.SortStableFunc(out, cmp)
	} else {
		slices.SortStableFunc(out, func(a, b Campaign) int { return cmp(b, a) })
	}
	return out
}

func compareBy(key SortKey) func(a, b Campaign) int {
	switch key {
	case SortByEndDate:
		return func(a, b Campaign) int { return strings.Compare(a.EndDate, b.EndDate) }
	case SortByProfitAmount:
		return func(a, b Campaign) int { return a.ProfitAmount.Cmp(b.ProfitAmount) }
	case SortByProfitPercent:
		return func(a, b Campaign) int { return a.ProfitPercent.Cmp(b.ProfitPercent) }
	default:
		return func(a, b Campaign) int { return strings.Compare(a.StartDate, b.StartDate) }
	}
}

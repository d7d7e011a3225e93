package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"campaign-tracker/internal/core/domain"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// parseQuery builds a domain.Query from the list endpoint's query string:
// sort, direction, search and the from/to dates in DD/MM/YYYY. Missing
// parameters keep the defaults of domain.DefaultQuery.
func parseQuery(values url.Values) (domain.Query, error) {
	q := domain.DefaultQuery()

	sortBy, err := domain.ParseSortKey(values.Get("sort"))
	if err != nil {
		return q, err
	}
	dir, err := domain.ParseDirection(values.Get("direction"))
	if err != nil {
		return q, err
	}
	q.SortBy, q.Direction = sortBy, dir
	q.Search = strings.TrimSpace(values.Get("search"))

	if q.From, err = parseDateParam(values, "from"); err != nil {
		return q, err
	}
	if q.To, err = parseDateParam(values, "to"); err != nil {
		return q, err
	}
	return q, nil
}

func parseDateParam(values url.Values, name string) (string, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return "", nil
	}
	key, err := domain.ParseUserDate(raw)
	if err != nil {
		return "", fmt.Errorf("invalid '%s' date: %w", name, err)
	}
	return key, nil
}

package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/parkslookup/parks-api/pkg/pagination"
)

// ParseQueryInt reads an optional numeric query parameter and enforces the
// inclusive [min, max] range.
func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}

// ParsePageParams reads the shared pageIndex/pageSize pagination parameters.
func ParsePageParams(r *http.Request) (pagination.Params, error) {
	pageIndex, err := ParseQueryInt(r, "pageIndex", 1, 1, 1<<30)
	if err != nil {
		return pagination.Params{}, err
	}
	pageSize, err := ParseQueryInt(r, "pageSize", pagination.DefaultPageSize, 1, pagination.MaxPageSize)
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{PageIndex: pageIndex, PageSize: pageSize}, nil
}

// ParseSortOrder accepts only "asc" and "desc" (blank means ascending).
func ParseSortOrder(r *http.Request) (string, error) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("sortOrder")))
	switch raw {
	case "", "asc", "desc":
		return raw, nil
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation, "sortOrder must be asc or desc").WithDetails(map[string]any{"field": "sortOrder"})
}

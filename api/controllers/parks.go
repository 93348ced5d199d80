package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/parkslookup/parks-api/api/responses"
	"github.com/parkslookup/parks-api/api/validators"
	"github.com/parkslookup/parks-api/internal/parks"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/parkslookup/parks-api/pkg/logger"
)

func parseID(r *http.Request, name string) (uint, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "identifier must be a positive integer").
			WithDetails(map[string]any{"field": name})
	}
	return uint(value), nil
}

func parseParkFilter(r *http.Request) (parks.ListFilter, error) {
	sortOrder, err := validators.ParseSortOrder(r)
	if err != nil {
		return parks.ListFilter{}, err
	}
	// Older clients send ?state= instead of ?stateCode=.
	stateCode := strings.TrimSpace(r.URL.Query().Get("stateCode"))
	if stateCode == "" {
		stateCode = strings.TrimSpace(r.URL.Query().Get("state"))
	}
	return parks.ListFilter{
		Name:      strings.TrimSpace(r.URL.Query().Get("name")),
		StateCode: stateCode,
		Type:      strings.ToLower(strings.TrimSpace(r.URL.Query().Get("type"))),
		SortOrder: sortOrder,
	}, nil
}

// ParksList returns the filtered, paginated park collection.
func ParksList(svc parks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parks service unavailable"))
			return
		}

		filter, err := parseParkFilter(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		page, err := validators.ParsePageParams(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.List(ctx, filter, page)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ParksGet returns a single park by its code.
func ParksGet(svc parks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parks service unavailable"))
			return
		}

		view, err := svc.GetByCode(ctx, chi.URLParam(r, "parkCode"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// ParksCreate inserts a new park.
func ParksCreate(svc parks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parks service unavailable"))
			return
		}

		var input parks.CreateParkInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		view, err := svc.Create(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

// ParksUpdate applies partial changes to a park by id.
func ParksUpdate(svc parks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parks service unavailable"))
			return
		}

		id, err := parseID(r, "parkId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var input parks.UpdateParkInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		view, err := svc.Update(ctx, id, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// ParksDelete removes a park by id.
func ParksDelete(svc parks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parks service unavailable"))
			return
		}

		id, err := parseID(r, "parkId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

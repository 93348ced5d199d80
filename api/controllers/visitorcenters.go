package controllers

import (
	"net/http"
	"strings"

	"github.com/parkslookup/parks-api/api/responses"
	"github.com/parkslookup/parks-api/api/validators"
	"github.com/parkslookup/parks-api/internal/visitorcenters"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/parkslookup/parks-api/pkg/logger"
)

func parseCenterFilter(r *http.Request) (visitorcenters.ListFilter, error) {
	sortOrder, err := validators.ParseSortOrder(r)
	if err != nil {
		return visitorcenters.ListFilter{}, err
	}
	parkID, err := validators.ParseQueryInt(r, "parkId", 0, 0, 1<<30)
	if err != nil {
		return visitorcenters.ListFilter{}, err
	}
	return visitorcenters.ListFilter{
		Name:      strings.TrimSpace(r.URL.Query().Get("name")),
		ParkID:    uint(parkID),
		SortOrder: sortOrder,
	}, nil
}

// VisitorCentersList returns the filtered, paginated visitor center collection.
func VisitorCentersList(svc visitorcenters.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "visitor centers service unavailable"))
			return
		}

		filter, err := parseCenterFilter(r)
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

// VisitorCentersGet returns a single visitor center by id.
func VisitorCentersGet(svc visitorcenters.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "visitor centers service unavailable"))
			return
		}

		id, err := parseID(r, "centerId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		view, err := svc.GetByID(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// VisitorCentersCreate inserts a new visitor center.
func VisitorCentersCreate(svc visitorcenters.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "visitor centers service unavailable"))
			return
		}

		var input visitorcenters.CreateVisitorCenterInput
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

// VisitorCentersUpdate applies partial changes to a visitor center by id.
func VisitorCentersUpdate(svc visitorcenters.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "visitor centers service unavailable"))
			return
		}

		id, err := parseID(r, "centerId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var input visitorcenters.UpdateVisitorCenterInput
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

// VisitorCentersDelete removes a visitor center by id.
func VisitorCentersDelete(svc visitorcenters.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "visitor centers service unavailable"))
			return
		}

		id, err := parseID(r, "centerId")
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

package controllers

import (
	"net/http"

	"github.com/parkslookup/parks-api/api/middleware"
	"github.com/parkslookup/parks-api/api/responses"
	"github.com/parkslookup/parks-api/api/validators"
	"github.com/parkslookup/parks-api/internal/userparks"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/parkslookup/parks-api/pkg/logger"
)

type savedParksPayload struct {
	ParkCodes []string `json:"parks" validate:"required,min=1,dive,required"`
}

// SavedParksList returns the caller's saved parks with the full park list
// filter surface.
func SavedParksList(svc userparks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "saved parks service unavailable"))
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

		result, err := svc.ListParks(ctx, middleware.UserIDFromContext(ctx), filter, page)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// SavedParksAdd saves a batch of parks for the caller.
func SavedParksAdd(svc userparks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "saved parks service unavailable"))
			return
		}

		var payload savedParksPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		added, err := svc.AddParks(ctx, middleware.UserIDFromContext(ctx), payload.ParkCodes)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"added": added})
	}
}

// SavedParksRemove removes a batch of saved parks for the caller.
func SavedParksRemove(svc userparks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "saved parks service unavailable"))
			return
		}

		var payload savedParksPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		removed, err := svc.RemoveParks(ctx, middleware.UserIDFromContext(ctx), payload.ParkCodes)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"removed": removed})
	}
}

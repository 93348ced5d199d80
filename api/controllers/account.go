package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/parkslookup/parks-api/api/middleware"
	"github.com/parkslookup/parks-api/api/responses"
	"github.com/parkslookup/parks-api/api/validators"
	"github.com/parkslookup/parks-api/internal/account"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/parkslookup/parks-api/pkg/logger"
)

// AccountRegister opens an account and returns a signed-in session.
func AccountRegister(svc account.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account service unavailable"))
			return
		}

		var input account.RegisterInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		resp, err := svc.Register(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, resp)
	}
}

// AccountLogin exchanges credentials for a bearer token.
func AccountLogin(svc account.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account service unavailable"))
			return
		}

		var input account.LoginInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		resp, err := svc.Login(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// AccountProfile returns a profile the caller is allowed to see.
func AccountProfile(svc account.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account service unavailable"))
			return
		}

		view, err := svc.Profile(ctx, middleware.UserIDFromContext(ctx), chi.URLParam(r, "userName"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// AccountUpdate applies partial changes to the caller's own account.
func AccountUpdate(svc account.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account service unavailable"))
			return
		}

		var input account.UpdateInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		view, err := svc.Update(ctx, middleware.UserIDFromContext(ctx), chi.URLParam(r, "userName"), input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// AccountDelete removes the caller's own account.
func AccountDelete(svc account.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account service unavailable"))
			return
		}

		if err := svc.Delete(ctx, middleware.UserIDFromContext(ctx), chi.URLParam(r, "userName")); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

type confirmEmployeePayload struct {
	Confirmed *bool `json:"confirmed" validate:"required"`
}

// AccountConfirmEmployee flips the employee confirmation flag on an account.
func AccountConfirmEmployee(svc account.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account service unavailable"))
			return
		}

		var payload confirmEmployeePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		view, err := svc.ConfirmEmployee(ctx, middleware.UserIDFromContext(ctx), chi.URLParam(r, "userName"), *payload.Confirmed)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

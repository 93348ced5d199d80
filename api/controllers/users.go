package controllers

import (
	"net/http"
	"strings"

	"github.com/parkslookup/parks-api/api/middleware"
	"github.com/parkslookup/parks-api/api/responses"
	"github.com/parkslookup/parks-api/api/validators"
	"github.com/parkslookup/parks-api/internal/account"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/parkslookup/parks-api/pkg/logger"
)

// EmployeeDirectory lists confirmed employee accounts, filterable by name,
// username and park.
func EmployeeDirectory(svc account.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account service unavailable"))
			return
		}

		parkID, err := validators.ParseQueryInt(r, "parkId", 0, 0, 1<<30)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		page, err := validators.ParsePageParams(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		filter := account.DirectoryFilter{
			Name:     strings.TrimSpace(r.URL.Query().Get("name")),
			UserName: strings.TrimSpace(r.URL.Query().Get("userName")),
			ParkID:   uint(parkID),
		}

		result, err := svc.EmployeeDirectory(ctx, middleware.UserIDFromContext(ctx), filter, page)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

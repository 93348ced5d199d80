package controllers

import (
	"net/http"

	"github.com/parkslookup/parks-api/api/responses"
	"github.com/parkslookup/parks-api/internal/seed"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/parkslookup/parks-api/pkg/logger"
)

// Seed loads the reference dataset into an empty database.
func Seed(loader *seed.Loader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if loader == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seed loader unavailable"))
			return
		}

		summary, err := loader.SeedIfEmpty(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, summary)
	}
}

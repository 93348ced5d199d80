package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/parkslookup/parks-api/api/responses"
	pkgauth "github.com/parkslookup/parks-api/pkg/auth"
	"github.com/parkslookup/parks-api/pkg/config"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/parkslookup/parks-api/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the claims.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}
			if claims.UserID == 0 || claims.UserName == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID)
			ctx = context.WithValue(ctx, ctxUserName, claims.UserName)
			ctx = context.WithValue(ctx, ctxIsEmployee, claims.IsEmployee)
			if claims.ParkID != nil {
				ctx = context.WithValue(ctx, ctxParkID, *claims.ParkID)
			}

			if logg != nil {
				fields := map[string]any{
					"user_id":   claims.UserID,
					"user_name": claims.UserName,
				}
				if claims.ParkID != nil {
					fields["park_id"] = *claims.ParkID
				}
				ctx = logg.WithFields(ctx, fields)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/parkslookup/parks-api/api/responses"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/parkslookup/parks-api/pkg/logger"
)

const apiVersionHeader = "X-Api-Version"

// DefaultAPIVersion is assumed when the client sends no version header.
const DefaultAPIVersion = "1.0"

// APIVersion enforces header-based versioning. A missing header means the
// default version; anything outside the supported set is rejected.
func APIVersion(supported []string, logg *logger.Logger) func(http.Handler) http.Handler {
	if len(supported) == 0 {
		supported = []string{DefaultAPIVersion}
	}
	allowed := make(map[string]struct{}, len(supported))
	for _, version := range supported {
		allowed[strings.TrimSpace(version)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			version := strings.TrimSpace(r.Header.Get(apiVersionHeader))
			if version == "" {
				version = DefaultAPIVersion
			}
			if _, ok := allowed[version]; !ok {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeConflict, "unsupported api version").
						WithDetails(map[string]any{"requested": version, "supported": supported}))
				return
			}
			w.Header().Set(apiVersionHeader, version)
			next.ServeHTTP(w, r)
		})
	}
}

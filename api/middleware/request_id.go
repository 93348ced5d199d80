package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/parkslookup/parks-api/pkg/logger"
)

const (
	requestIDHeader = "X-Request-Id"
	// Caps a client-supplied id so a hostile header cannot bloat log lines.
	maxRequestIDLen = 64
)

// RequestID tags every request with a correlation id. A well-formed inbound
// X-Request-Id is honored so ids stay stable across proxies; anything absent
// or oversized is replaced with a fresh UUID. The id is echoed on the
// response and attached to the request-scoped logger.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get(requestIDHeader)
			if rid == "" || len(rid) > maxRequestIDLen {
				rid = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, rid)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, rid)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

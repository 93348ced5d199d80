package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/parkslookup/parks-api/api/responses"
	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
	"github.com/parkslookup/parks-api/pkg/logger"
)

// Recoverer converts a handler panic into a 500 response instead of tearing
// down the connection. http.ErrAbortHandler re-panics so the server's own
// abort semantics stay intact.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				cause := recover()
				if cause == nil {
					return
				}
				if cause == http.ErrAbortHandler {
					panic(cause)
				}

				err := fmt.Errorf("handler panic: %v", cause)
				ctx := r.Context()
				if logg != nil {
					ctx = logg.WithFields(ctx, map[string]any{
						"panic": fmt.Sprint(cause),
						"stack": string(debug.Stack()),
					})
					logg.Error(ctx, "request.panic", err)
				}
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "handler panic"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

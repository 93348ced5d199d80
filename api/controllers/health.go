package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/parkslookup/parks-api/api/responses"
	"github.com/parkslookup/parks-api/pkg/config"
	"github.com/parkslookup/parks-api/pkg/logger"
)

// Pinger is the readiness contract for backing dependencies.
type Pinger interface {
	Ping(ctx context.Context) error
}

const readinessTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ParksApi-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness of the database and redis. Any failing
// dependency makes the endpoint return 503.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP, redisP Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		w.Header().Set("X-ParksApi-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		probe := func(name string, p Pinger) {
			if p == nil {
				checks[name] = "skipped"
				return
			}
			if err := p.Ping(ctx); err != nil {
				checks[name] = "unavailable"
				healthy = false
				if logg != nil {
					logg.Error(logg.WithField(ctx, "dependency", name), "health.dependency_failed", err)
				}
				return
			}
			checks[name] = "ok"
		}

		probe("database", dbP)
		probe("redis", redisP)

		status := http.StatusOK
		state := "ready"
		if !healthy {
			status = http.StatusServiceUnavailable
			state = "degraded"
		}
		responses.WriteSuccessStatus(w, status, map[string]any{"status": state, "checks": checks})
	}
}

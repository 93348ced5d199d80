package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/parkslookup/parks-api/api/controllers"
	"github.com/parkslookup/parks-api/api/middleware"
	"github.com/parkslookup/parks-api/internal/account"
	"github.com/parkslookup/parks-api/internal/parks"
	"github.com/parkslookup/parks-api/internal/seed"
	"github.com/parkslookup/parks-api/internal/userparks"
	"github.com/parkslookup/parks-api/internal/visitorcenters"
	"github.com/parkslookup/parks-api/pkg/config"
	"github.com/parkslookup/parks-api/pkg/logger"
	"github.com/parkslookup/parks-api/pkg/metrics"
	"github.com/parkslookup/parks-api/pkg/redis"
)

// Deps carries everything the route table wires together.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DBPinger       controllers.Pinger
	Redis          *redis.Client
	Metrics        *metrics.HTTPMetrics
	Parks          parks.Service
	VisitorCenters visitorcenters.Service
	Account        account.Service
	SavedParks     userparks.Service
	Seeder         *seed.Loader
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		"handle",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginHandleLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		"email",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	var redisPinger controllers.Pinger
	var limiterStore *redis.Client
	if deps.Redis != nil {
		redisPinger = deps.Redis
		limiterStore = deps.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DBPinger, redisPinger))
	})

	if deps.Metrics != nil {
		r.Method("GET", "/metrics", deps.Metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.APIVersion([]string{middleware.DefaultAPIVersion}, logg))

		r.Post("/seed", controllers.Seed(deps.Seeder, logg))

		r.Route("/account", func(r chi.Router) {
			r.With(rateLimiter(registerPolicy, limiterStore, logg)).Post("/register", controllers.AccountRegister(deps.Account, logg))
			r.With(rateLimiter(loginPolicy, limiterStore, logg)).Post("/login", controllers.AccountLogin(deps.Account, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWT, logg))
				r.Get("/{userName}", controllers.AccountProfile(deps.Account, logg))
				r.Put("/{userName}", controllers.AccountUpdate(deps.Account, logg))
				r.Delete("/{userName}", controllers.AccountDelete(deps.Account, logg))
				r.Post("/{userName}/confirm-employee", controllers.AccountConfirmEmployee(deps.Account, logg))
			})
		})

		r.Route("/parks", func(r chi.Router) {
			r.Get("/", controllers.ParksList(deps.Parks, logg))
			r.Get("/{parkCode}", controllers.ParksGet(deps.Parks, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWT, logg))
				r.Post("/", controllers.ParksCreate(deps.Parks, logg))
				r.Put("/{parkId}", controllers.ParksUpdate(deps.Parks, logg))
				r.Delete("/{parkId}", controllers.ParksDelete(deps.Parks, logg))
			})
		})

		r.Route("/visitorcenters", func(r chi.Router) {
			r.Get("/", controllers.VisitorCentersList(deps.VisitorCenters, logg))
			r.Get("/{centerId}", controllers.VisitorCentersGet(deps.VisitorCenters, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWT, logg))
				r.Post("/", controllers.VisitorCentersCreate(deps.VisitorCenters, logg))
				r.Put("/{centerId}", controllers.VisitorCentersUpdate(deps.VisitorCenters, logg))
				r.Delete("/{centerId}", controllers.VisitorCentersDelete(deps.VisitorCenters, logg))
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Get("/", controllers.EmployeeDirectory(deps.Account, logg))
			r.Route("/parks", func(r chi.Router) {
				r.Get("/", controllers.SavedParksList(deps.SavedParks, logg))
				r.Post("/", controllers.SavedParksAdd(deps.SavedParks, logg))
				r.Delete("/", controllers.SavedParksRemove(deps.SavedParks, logg))
			})
		})
	})

	return r
}

func rateLimiter(policy middleware.AuthRateLimitPolicy, store *redis.Client, logg *logger.Logger) func(http.Handler) http.Handler {
	if store == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware.AuthRateLimit(policy, store, logg)
}

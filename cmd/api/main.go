package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/parkslookup/parks-api/api/routes"
	"github.com/parkslookup/parks-api/internal/account"
	"github.com/parkslookup/parks-api/internal/identity"
	"github.com/parkslookup/parks-api/internal/parks"
	"github.com/parkslookup/parks-api/internal/seed"
	"github.com/parkslookup/parks-api/internal/userparks"
	"github.com/parkslookup/parks-api/internal/visitorcenters"
	"github.com/parkslookup/parks-api/pkg/config"
	"github.com/parkslookup/parks-api/pkg/db"
	"github.com/parkslookup/parks-api/pkg/logger"
	"github.com/parkslookup/parks-api/pkg/metrics"
	"github.com/parkslookup/parks-api/pkg/migrate"
	"github.com/parkslookup/parks-api/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	gateway, err := identity.NewGateway(dbClient, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create identity gateway", err)
		os.Exit(1)
	}

	parkRepo := parks.NewRepository(dbClient.DB())

	parksService, err := parks.NewService(parks.ServiceParams{Repo: parkRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create parks service", err)
		os.Exit(1)
	}
	centersService, err := visitorcenters.NewService(visitorcenters.ServiceParams{
		Repo:     visitorcenters.NewRepository(dbClient.DB()),
		ParkRepo: parkRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create visitor centers service", err)
		os.Exit(1)
	}
	accountService, err := account.NewService(account.ServiceParams{
		Gateway:  gateway,
		ParkRepo: parkRepo,
		JWT:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create account service", err)
		os.Exit(1)
	}
	savedParksService, err := userparks.NewService(userparks.ServiceParams{
		Repo:     userparks.NewRepository(dbClient.DB()),
		ParkRepo: parkRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create saved parks service", err)
		os.Exit(1)
	}
	seeder, err := seed.NewLoader(dbClient, gateway, cfg.Seed)
	if err != nil {
		logg.Error(context.Background(), "failed to create seed loader", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:         cfg,
			Logger:         logg,
			DBPinger:       dbClient,
			Redis:          redisClient,
			Metrics:        metrics.NewHTTPMetrics(),
			Parks:          parksService,
			VisitorCenters: centersService,
			Account:        accountService,
			SavedParks:     savedParksService,
			Seeder:         seeder,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/journeys/config"
	"github.com/Domenick1991/journeys/internal/bootstrap"
	"github.com/Domenick1991/journeys/internal/cache"
	"github.com/Domenick1991/journeys/internal/command"
	"github.com/Domenick1991/journeys/internal/domain"
	"github.com/Domenick1991/journeys/internal/repository"
	"github.com/Domenick1991/journeys/internal/service/journeys"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Error("load config failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// With refreshing enabled queries read the warm snapshot; otherwise they
	// go straight to the provider.
	var flightsRepo repository.FlightsRepository
	if cfg.Cache.Enabled() {
		store := cache.NewRedisCache(cfg.Redis, cfg.Cache.Key)
		flightsRepo = repository.NewCachedFlightsRepository(store)
		logger.Info("serving queries from cache snapshot", "key", cfg.Cache.Key)
	} else {
		flightsRepo = repository.NewHTTPFlightsRepository(nil, cfg.Provider.BaseURL, cfg.Provider.Endpoint)
		logger.Info("serving queries from live provider", "base_url", cfg.Provider.BaseURL)
	}

	searchService := journeys.NewSearchService(flightsRepo, journeys.NewBuilder())

	bus := command.NewBus()
	bus.Register(domain.SearchCriteria{}.Name(), func(ctx context.Context, cmd command.Command) ([]domain.Journey, error) {
		return searchService.Search(ctx, cmd.(domain.SearchCriteria))
	})

	if err := bootstrap.Run(ctx, cfg, bus); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

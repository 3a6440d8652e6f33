package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/journeys/config"
	"github.com/Domenick1991/journeys/internal/cache"
	"github.com/Domenick1991/journeys/internal/kafka"
	"github.com/Domenick1991/journeys/internal/refresher"
	"github.com/Domenick1991/journeys/internal/repository"
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

	source := repository.NewHTTPFlightsRepository(nil, cfg.Provider.BaseURL, cfg.Provider.Endpoint)
	store := cache.NewRedisCache(cfg.Redis, cfg.Cache.Key)

	ref := refresher.New(source, store, cfg.Cache.RefreshInterval())

	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.SnapshotTopic != "" {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		ref = ref.WithPublisher(producer, cfg.Kafka.SnapshotTopic, cfg.Cache.Key)
	}

	logger.Info("starting cache refresher", "interval", cfg.Cache.RefreshInterval().String())
	if err := ref.Run(ctx); err != nil {
		logger.Error("refresher stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("worker exited")
}

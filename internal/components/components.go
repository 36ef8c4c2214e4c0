package components

import (
	"context"
	"fmt"
	"os"
	"time"

	"log/slog"

	"github.com/marcelpiva/myfit-api-sub002/internal/api"
	"github.com/marcelpiva/myfit-api-sub002/internal/config"
	"github.com/marcelpiva/myfit-api-sub002/internal/redis"
	"github.com/marcelpiva/myfit-api-sub002/internal/service"
	"github.com/marcelpiva/myfit-api-sub002/internal/storage/postgres"
	"github.com/marcelpiva/myfit-api-sub002/internal/workers"
)

type Components struct {
	logger       *slog.Logger
	HttpServer   *api.Server
	Postgres     *postgres.Postgres
	Redis        *redis.Redis
	NotifyQueue  *redis.NotifyQueue
	NotifySender *workers.NotifySender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	notifyQueue := redis.NewNotifyQueue(redisClient.Client, "notifications:queue")
	locations := redis.NewTrainerLocationStore(redisClient)

	proximitySvc := service.NewProximityService(storage.Gyms, storage.CheckIns, storage.Memberships, locations, logger, cfg.CheckIn)
	gymSvc := service.NewGymService(storage.Gyms, logger, cfg.CheckIn.DefaultGymRadius)
	codeSvc := service.NewCodeService(storage.Codes, storage.Gyms, logger)
	checkinSvc := service.NewCheckInService(storage.CheckIns, storage.Gyms, storage.Codes, storage.Memberships, locations, proximitySvc, notifyQueue, logger, cfg.CheckIn)
	requestSvc := service.NewRequestService(storage.Requests, storage.Gyms, checkinSvc, notifyQueue, logger, cfg.CheckIn)
	locationSvc := service.NewLocationService(locations, storage.CheckIns, storage.Gyms, storage.Memberships, notifyQueue, logger, cfg.CheckIn)

	srv := service.NewService(gymSvc, codeSvc, checkinSvc, requestSvc, proximitySvc, locationSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	sender := workers.NewNotifySender(logger, cfg.Push, notifyQueue)
	logger.Info("Initialized server")

	return &Components{
		logger:       logger,
		HttpServer:   httpServer,
		Postgres:     storage,
		Redis:        redisClient,
		NotifyQueue:  notifyQueue,
		NotifySender: sender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}

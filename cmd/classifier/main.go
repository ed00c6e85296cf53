package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"github.com/shenikar/drive_journal/internal/config"
	"github.com/shenikar/drive_journal/internal/metrics"
	"github.com/shenikar/drive_journal/internal/repository"
	"github.com/shenikar/drive_journal/internal/service"
	"github.com/shenikar/drive_journal/pkg/logger"
	"github.com/shenikar/drive_journal/pkg/postgres"
	redisclient "github.com/shenikar/drive_journal/pkg/redis"
	"github.com/sirupsen/logrus"
)

func main() {
	once := flag.Bool("once", false, "classify one batch and exit")
	limit := flag.Int("limit", 0, "batch size, CLASSIFY_BATCH_SIZE when 0")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	policyDefaults, err := config.LoadPolicyDefaults(cfg.PolicyFile)
	if err != nil {
		log.Fatalf("Failed to load policy defaults: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()

	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:            cfg.RedisAddr,
		Password:        cfg.RedisPass,
		DB:              cfg.RedisDB,
		ConnectAttempts: 5,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	tripRepo := repository.NewTripRepository(dbpool)
	positionRepo := repository.NewPositionRepository(dbpool)
	geofenceRepo := repository.NewGeofenceRepository(dbpool)
	policyService := service.NewPolicyService(repository.NewPolicyRepository(dbpool, redisClient), policyDefaults, log)
	tripService := service.NewTripService(tripRepo, positionRepo, geofenceRepo, policyService, metrics.NewMetrics(nil), log, cfg)

	run := func() {
		report, err := tripService.ClassifyPending(ctx, *limit)
		if err != nil {
			log.WithError(err).Error("Classification batch failed")
			return
		}
		log.WithFields(logrus.Fields{
			"processed":  report.Processed,
			"classified": report.Classified,
			"flagged":    report.Flagged,
			"approved":   report.Approved,
			"failed":     report.Failed,
			"duration":   report.FinishedAt.Sub(report.StartedAt).String(),
		}).Info("Classification batch finished")
	}

	run()
	if *once {
		return
	}

	log.Infof("Classifier started, interval %s", cfg.ClassifyInterval)
	ticker := time.NewTicker(cfg.ClassifyInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("Classifier stopped")
			return
		case <-ticker.C:
			run()
		}
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/drive_journal/internal/config"
	"github.com/shenikar/drive_journal/internal/gps"
	"github.com/shenikar/drive_journal/internal/metrics"
	"github.com/shenikar/drive_journal/internal/publisher"
	"github.com/shenikar/drive_journal/internal/repository"
	"github.com/shenikar/drive_journal/internal/service"
	"github.com/shenikar/drive_journal/internal/subscriber"
	"github.com/shenikar/drive_journal/internal/webhook"
	"github.com/shenikar/drive_journal/pkg/logger"
	mqttclient "github.com/shenikar/drive_journal/pkg/mqtt"
	"github.com/shenikar/drive_journal/pkg/postgres"
	redisclient "github.com/shenikar/drive_journal/pkg/redis"
	"github.com/sirupsen/logrus"
)

// Трекер принимает отметки из MQTT и от поставщика GPS и прогоняет их через детектор геозон
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	// Вебхуки доставляет воркер API, трекер только ставит их в очередь
	var others []service.EventPublisher
	if cfg.WebhookURL != "" {
		others = append(others, webhook.NewRedisWebhookPublisher(redisClient))
	}
	events, closeBroker, err := publisher.FromConfig(cfg, others...)
	if err != nil {
		log.Fatalf("Failed to connect to event broker: %v", err)
	}
	defer closeBroker()

	geofenceService := service.NewGeofenceService(
		repository.NewGeofenceRepository(dbpool),
		repository.NewPositionRepository(dbpool),
		repository.NewGeofenceStateStore(redisClient),
		events,
		m,
		log,
	)

	var wg sync.WaitGroup

	if cfg.MQTTBroker != "" {
		client, err := mqttclient.NewMQTTClient(cfg.MQTTBroker, cfg.MQTTClientID)
		if err != nil {
			log.Fatalf("Failed to connect to MQTT: %v", err)
		}
		defer client.Disconnect(250)
		sub := subscriber.NewLocationSubscriber(client, cfg.MQTTTopic, geofenceService, log)
		if err := sub.Start(); err != nil {
			log.Fatalf("Failed to subscribe to locations: %v", err)
		}
		defer sub.Stop()
	}

	if cfg.GPSBaseURL != "" {
		client := gps.NewClient(cfg, repository.NewGPSTokenCache(redisClient), log)
		poller := gps.NewPoller(client, geofenceService, cfg.GPSPollInterval, log)
		wg.Add(1)
		go func() {
			defer wg.Done()
			poller.Run(ctx)
		}()
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.HTTPPort), Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Metrics server stopped")
		}
	}()
	log.Infof("Tracker started, metrics on port %s", cfg.HTTPPort)

	<-ctx.Done()
	log.Info("Received shutdown signal, stopping tracker...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	wg.Wait()

	log.Info("Tracker stopped")
}

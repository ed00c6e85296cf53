package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/shenikar/drive_journal/internal/config"
	v1 "github.com/shenikar/drive_journal/internal/handler/http/v1"
	"github.com/shenikar/drive_journal/internal/metrics"
	"github.com/shenikar/drive_journal/internal/publisher"
	"github.com/shenikar/drive_journal/internal/repository"
	"github.com/shenikar/drive_journal/internal/service"
	"github.com/shenikar/drive_journal/internal/webhook"
	"github.com/shenikar/drive_journal/pkg/logger"
	"github.com/shenikar/drive_journal/pkg/postgres"
	redisclient "github.com/shenikar/drive_journal/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/drive_journal/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Drive Journal API
// @version 1.0
// @description Driving journal: trips, business/private classification, geofences and GPS positions.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	policyDefaults, err := config.LoadPolicyDefaults(cfg.PolicyFile)
	if err != nil {
		log.Fatalf("Failed to load policy defaults: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
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
	log.Info("Successfully connected to Redis")

	// Метрики
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(reg)

	// Публикаторы событий геозон: очередь вебхуков и брокер
	var webhookDone <-chan struct{}
	var others []service.EventPublisher
	if cfg.WebhookURL != "" {
		others = append(others, webhook.NewRedisWebhookPublisher(redisClient))
		webhookDone = webhook.NewWebhookWorker(redisClient, log, cfg).Start(ctx)
	}
	events, closeBroker, err := publisher.FromConfig(cfg, others...)
	if err != nil {
		log.Fatalf("Failed to connect to event broker: %v", err)
	}
	defer closeBroker()

	// Инициализация репозиториев
	tripRepo := repository.NewTripRepository(dbpool)
	geofenceRepo := repository.NewGeofenceRepository(dbpool)
	positionRepo := repository.NewPositionRepository(dbpool)
	policyRepo := repository.NewPolicyRepository(dbpool, redisClient)
	stateStore := repository.NewGeofenceStateStore(redisClient)

	// Инициализация сервисов
	policyService := service.NewPolicyService(policyRepo, policyDefaults, log)
	geofenceService := service.NewGeofenceService(geofenceRepo, positionRepo, stateStore, events, m, log)
	tripService := service.NewTripService(tripRepo, positionRepo, geofenceRepo, policyService, m, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(tripService, geofenceService, policyService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-API-Key"},
		ExposedHeaders: []string{"Content-Disposition"},
	})

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: corsHandler.Handler(router),
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	cancel()
	if webhookDone != nil {
		<-webhookDone
	}

	log.Info("Server gracefully stopped")
}

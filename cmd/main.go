package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/disaster_connect/docs"
	"github.com/shenikar/disaster_connect/internal/config"
	v1 "github.com/shenikar/disaster_connect/internal/handler/http/v1"
	"github.com/shenikar/disaster_connect/internal/models"
	"github.com/shenikar/disaster_connect/internal/observability"
	"github.com/shenikar/disaster_connect/internal/report"
	"github.com/shenikar/disaster_connect/internal/repository"
	"github.com/shenikar/disaster_connect/internal/service"
	"github.com/shenikar/disaster_connect/internal/webhook"
	"github.com/shenikar/disaster_connect/pkg/logger"
	redisclient "github.com/shenikar/disaster_connect/pkg/redis"
)

// @title DisasterConnect API
// @version 1.0
// @description Crowdsourced disaster incident reports: feed, map markers and report submission.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Error("Service stopped with error")
		os.Exit(1)
	}
	log.Info("Server gracefully stopped")
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics()

	// Хранилище инцидентов
	var seed []models.Incident
	if cfg.SeedDemoData {
		seed = repository.SeedIncidents(clock.Now())
	}
	store := repository.NewIncidentStore(clock, cfg.ReportedBy, seed...)
	metrics.StoredIncidents.Set(float64(store.Len()))
	log.WithField("incidents", store.Len()).Info("Incident store initialized")

	// Уведомления через Redis включаются только при заданном WEBHOOK_URL
	var publisher webhook.WebhookPublisher = webhook.NoopPublisher{}
	if cfg.WebhooksEnabled() {
		redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return err
		}
		defer closeRedis(redisClient, log)
		log.Info("Successfully connected to Redis")

		queue := webhook.NewRedisQueue(redisClient)
		publisher = webhook.NewQueuePublisher(queue)

		worker := webhook.NewWebhookWorker(queue, log, cfg, metrics)
		worker.Start(ctx)
		defer worker.Stop()
	} else {
		log.Info("WEBHOOK_URL is not set, incident notifications are disabled")
	}

	incidentService := service.NewIncidentService(store, report.NewValidator(), publisher, metrics, clock, log)
	handler := v1.NewHandler(incidentService, log, cfg)

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: handler.NewRouter(),
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	select {
	case err := <-serveErr:
		return fmt.Errorf("error starting HTTP server: %w", err)
	case <-ctx.Done():
	}
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

func closeRedis(client *goredis.Client, log *logrus.Logger) {
	if err := client.Close(); err != nil {
		log.WithError(err).Warn("Failed to close Redis client")
	}
}

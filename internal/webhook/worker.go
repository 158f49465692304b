package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_connect/internal/config"
	"github.com/shenikar/disaster_connect/internal/observability"
)

// Заголовки исходящего запроса
const (
	HeaderSignature = "X-Webhook-Signature"
	HeaderDelivery  = "X-Webhook-Delivery"
)

const defaultPollTimeout = time.Second

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	queue       Queue
	logger      *logrus.Logger
	cfg         *config.Config
	metrics     *observability.Metrics
	httpClient  *http.Client
	pollTimeout time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(queue Queue, logger *logrus.Logger, cfg *config.Config, metrics *observability.Metrics) *WebhookWorker {
	return &WebhookWorker{
		queue:   queue,
		logger:  logger,
		cfg:     cfg,
		metrics: metrics,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		pollTimeout: defaultPollTimeout,
	}
}

// Start запускает горутину для обработки очереди вебхуков
func (w *WebhookWorker) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.logger.Info("Starting webhook worker...")

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()
}

// Stop останавливает воркер и ждет завершения текущей доставки
func (w *WebhookWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

func (w *WebhookWorker) run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			w.logger.Info("Stopping webhook worker.")
			return
		}

		payload, err := w.queue.Pop(ctx, w.pollTimeout)
		if err != nil {
			if errors.Is(err, ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue // контекст отменен, это не ошибка очереди
			}
			w.logger.WithError(err).Error("Failed to pop webhook event from queue")
			sleep(ctx, w.cfg.WebhookTimeout)
			continue
		}

		var event WebhookEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			w.logger.WithError(err).Error("Failed to unmarshal webhook event")
			w.metrics.WebhookDeliveries.WithLabelValues(observability.OutcomeDecode).Inc()
			continue
		}

		w.processWebhookEvent(ctx, event, payload)
	}
}

func (w *WebhookWorker) processWebhookEvent(ctx context.Context, event WebhookEvent, payload []byte) {
	log := w.logger.WithFields(logrus.Fields{
		"event_id":    event.ID,
		"event_type":  event.Type,
		"incident_id": event.Incident.ID,
	})
	log.Debug("Processing webhook event...")

	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.send(ctx, event, payload)
		if err == nil {
			log.Info("Webhook delivered successfully.")
			w.metrics.WebhookDeliveries.WithLabelValues(observability.OutcomeDelivered).Inc()
			return
		}

		left := maxRetries - 1 - i
		if left == 0 {
			log.WithError(err).Warn("Webhook delivery attempt failed.")
			break
		}
		log.WithError(err).Warnf("Webhook delivery attempt failed. Retrying in %v. Retries left: %d", delay, left)
		w.metrics.WebhookDeliveries.WithLabelValues(observability.OutcomeRetried).Inc()
		if !sleep(ctx, delay) {
			log.Warn("Webhook delivery interrupted by shutdown.")
			w.metrics.WebhookDeliveries.WithLabelValues(observability.OutcomeFailed).Inc()
			return
		}
		delay *= 2 // экспоненциальная задержка
	}

	log.Errorf("Failed to deliver webhook for event after %d attempts.", maxRetries)
	w.metrics.WebhookDeliveries.WithLabelValues(observability.OutcomeFailed).Inc()
}

func (w *WebhookWorker) send(ctx context.Context, event WebhookEvent, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderDelivery, event.ID)
	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(HeaderSignature, Sign(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint responded with status %d", resp.StatusCode)
	}
	return nil
}

// Sign генерирует HMAC-SHA256 подпись тела запроса в hex
func Sign(payload []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// sleep ждет d или отмены контекста; false означает отмену
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

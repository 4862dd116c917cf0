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
	"net/http"
	"time"

	"github.com/kure690/GuardianDeployment-sub000/internal/config"
	"github.com/kure690/GuardianDeployment-sub000/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// listPopper - часть клиента Redis, нужная worker'у
type listPopper interface {
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
}

// Worker доставляет сообщения о передаче во внешний чат через webhook
type Worker struct {
	redisClient listPopper
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient listPopper, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину обработки очереди; завершается вместе с ctx
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting handoff webhook worker...")
	go func() {
		for ctx.Err() == nil {
			w.next(ctx)
		}
		w.logger.Info("Stopping handoff webhook worker.")
	}()
}

// next извлекает одно сообщение и доставляет его
func (w *Worker) next(ctx context.Context) {
	// 0 означает бесконечное ожидание
	result, err := w.redisClient.BRPop(ctx, 0, handoffQueueKey).Result()
	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return
		}
		w.logger.WithError(err).Error("Failed to pop handoff message from Redis")
		sleepCtx(ctx, w.cfg.WebhookTimeout)
		return
	}

	// result[0] - ключ, result[1] - значение
	payload := result[1]
	var msg models.HandoffMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal handoff message from Redis")
		return
	}

	if err := w.Deliver(ctx, msg, payload); err != nil {
		w.logger.WithError(err).WithField("incident_id", msg.IncidentID).Error("Handoff message dropped")
	}
}

// Deliver отправляет сообщение с экспоненциальной задержкой между попытками
func (w *Worker) Deliver(ctx context.Context, msg models.HandoffMessage, rawPayload string) error {
	log := w.logger.WithFields(logrus.Fields{
		"incident_id": msg.IncidentID,
		"opcen_id":    msg.OpCenID,
	})
	log.Debug("Delivering handoff message...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping handoff message delivery.")
		return nil
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		status, err := w.post(ctx, rawPayload)
		if err == nil && status >= 200 && status < 300 {
			log.Info("Handoff message delivered successfully.")
			return nil
		}
		if i == maxRetries-1 {
			break
		}
		if err != nil {
			log.WithError(err).Warnf("Failed to send handoff message. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		} else {
			log.Warnf("Handoff message delivery failed with status code %d. Retrying in %v. Retries left: %d", status, delay, maxRetries-1-i)
		}
		if !sleepCtx(ctx, delay) {
			return ctx.Err()
		}
		delay *= 2 // Экспоненциальная задержка
	}

	return fmt.Errorf("failed to deliver handoff message after %d attempts", maxRetries)
}

func (w *Worker) post(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

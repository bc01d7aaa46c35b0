package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jarteaga/parte_reporting_system/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Worker drains the parte event queue and delivers each event to the
// configured endpoint, retrying with exponential backoff.
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start launches the delivery loop in its own goroutine. It stops when ctx is
// cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting parte webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping parte webhook worker.")
				return
			default:
				result, err := w.redisClient.BRPop(ctx, 0, parteEventQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop parte event from queue")
					time.Sleep(w.cfg.WebhookTimeout)
					continue
				}

				// result[0] is the key, result[1] the payload
				payload := result[1]
				var event ParteEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal parte event")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
}

func (w *Worker) deliver(ctx context.Context, event ParteEvent, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"event_id": event.EventID,
		"parte_id": event.ParteID,
		"paso":     event.Paso,
	})
	log.Debug("Delivering parte event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping delivery.")
		return
	}

	delay := w.cfg.WebhookBaseDelay
	for attempt := 0; attempt < w.cfg.WebhookMaxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Error("Failed to build webhook request")
			return
		}
		req.Header.Set("Content-Type", "application/json")
		if w.cfg.WebhookSecret != "" {
			req.Header.Set("X-Webhook-Signature", signPayload(rawPayload, w.cfg.WebhookSecret))
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Webhook delivery failed. Retrying in %v", delay)
			time.Sleep(delay)
			delay *= 2
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Parte event delivered.")
			return
		}
		log.Warnf("Webhook endpoint answered %d. Retrying in %v", resp.StatusCode, delay)
		time.Sleep(delay)
		delay *= 2
	}

	log.Errorf("Giving up on parte event after %d attempts.", w.cfg.WebhookMaxRetries)
}

// signPayload computes the HMAC-SHA256 hex signature the receiver verifies.
func signPayload(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

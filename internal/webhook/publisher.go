package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const parteEventQueueKey = "parte_events"

// ParteEvent notifies the configured endpoint that a parte submission step
// committed.
type ParteEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	ParteID   int64     `json:"parte_id"`
	Estado    string    `json:"estado"`
	Paso      int       `json:"paso"`
	Timestamp time.Time `json:"timestamp"`
}

// NewParteEvent stamps a fresh event for the given submission step.
func NewParteEvent(parteID int64, estado string, paso int) ParteEvent {
	return ParteEvent{
		EventID:   uuid.New(),
		ParteID:   parteID,
		Estado:    estado,
		Paso:      paso,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher enqueues parte events for asynchronous delivery.
type Publisher interface {
	Publish(ctx context.Context, event ParteEvent) error
}

// RedisPublisher pushes events onto a redis list consumed by the Worker.
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{redisClient: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, event ParteEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal parte event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, parteEventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue parte event: %w", err)
	}
	return nil
}

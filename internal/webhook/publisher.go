package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kure690/GuardianDeployment-sub000/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	handoffQueueKey = "handoff_messages"
)

// listPusher - часть клиента Redis, нужная публикатору
type listPusher interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// RedisHandoffPublisher ставит сообщения о передаче инцидента в очередь Redis,
// откуда их забирает Worker
type RedisHandoffPublisher struct {
	redisClient listPusher
}

// NewRedisHandoffPublisher создает новый RedisHandoffPublisher
func NewRedisHandoffPublisher(client listPusher) *RedisHandoffPublisher {
	return &RedisHandoffPublisher{
		redisClient: client,
	}
}

// PostHandoff публикует сообщение о передаче в очередь Redis
func (p *RedisHandoffPublisher) PostHandoff(ctx context.Context, msg models.HandoffMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal handoff message: %w", err)
	}

	// LPUSH в голову списка, worker забирает с хвоста
	if err := p.redisClient.LPush(ctx, handoffQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish handoff message to Redis: %w", err)
	}
	return nil
}

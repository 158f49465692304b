package webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// QueueKey - список Redis с событиями для доставки
const QueueKey = "incident_events"

// ErrQueueEmpty возвращается Pop, если за время ожидания событий не появилось
var ErrQueueEmpty = errors.New("webhook queue is empty")

// Queue - очередь сериализованных событий: Push кладет в голову, Pop забирает из хвоста
type Queue interface {
	Push(ctx context.Context, payload []byte) error
	Pop(ctx context.Context, timeout time.Duration) ([]byte, error)
}

// RedisQueue - очередь на списке Redis (LPUSH / BRPOP)
type RedisQueue struct {
	client *redis.Client
	key    string
}

// NewRedisQueue создает очередь на ключе QueueKey
func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{client: client, key: QueueKey}
}

// Push добавляет событие в левую часть списка
func (q *RedisQueue) Push(ctx context.Context, payload []byte) error {
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("failed to push webhook event to Redis: %w", err)
	}
	return nil
}

// Pop блокируется не дольше timeout, ожидая событие из правой части списка
func (q *RedisQueue) Pop(ctx context.Context, timeout time.Duration) ([]byte, error) {
	result, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrQueueEmpty
		}
		return nil, fmt.Errorf("failed to pop webhook event from Redis: %w", err)
	}
	// result[0] - ключ, result[1] - значение
	return []byte(result[1]), nil
}

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// sequenceTTL срок хранения счетчика дня; ключ переживает сутки с запасом на часовые пояса.
const sequenceTTL = 48 * time.Hour

// RedisOrderCounter дневной счетчик номеров заказов на INCR в Redis.
type RedisOrderCounter struct {
	client      *redis.Client
	serviceName string
}

func NewRedisOrderCounter(addr, serviceName string) *RedisOrderCounter {
	return &RedisOrderCounter{
		client:      redis.NewClient(&redis.Options{Addr: addr}),
		serviceName: serviceName,
	}
}

// NextDailySequence атомарно увеличивает счетчик дня и продлевает срок жизни ключа.
func (c *RedisOrderCounter) NextDailySequence(ctx context.Context, day time.Time) (int, error) {
	key := c.GenerateKey("order-seq", day.Format("20060102"))

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, sequenceTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("redis: не удалось увеличить счетчик %s: %w", key, err)
	}

	return int(incr.Val()), nil
}

// Ping проверяет доступность Redis.
func (c *RedisOrderCounter) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisOrderCounter) Close() error {
	return c.client.Close()
}

func (c *RedisOrderCounter) GenerateKey(operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", c.serviceName, operation, key)
}

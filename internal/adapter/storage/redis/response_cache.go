package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/google/uuid"
)

// Cache key builders shared by services and invalidation sites.

func ProductsKey() string {
	return "products"
}

func CustomersKey(userID uuid.UUID) string {
	return "customers:" + userID.String()
}

func BalanceKey(userID uuid.UUID) string {
	return "balance:" + userID.String()
}

// ResponseCache implements ports.ResponseCache using Redis. It holds
// assembled read-model responses so list and balance queries skip the
// database on repeat reads.
type ResponseCache struct {
	client *goredis.Client
	prefix string
}

// NewResponseCache creates a new Redis-backed response cache.
func NewResponseCache(client *goredis.Client) *ResponseCache {
	return &ResponseCache{
		client: client,
		prefix: "response:",
	}
}

// Get retrieves a cached response. Returns nil, nil on a miss.
func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis response get: %w", err)
	}
	return val, nil
}

// Set stores a response with TTL.
func (c *ResponseCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis response set: %w", err)
	}
	return nil
}

// Delete removes cached responses, used to invalidate after a mutation.
func (c *ResponseCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = c.prefix + k
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis response delete: %w", err)
	}
	return nil
}

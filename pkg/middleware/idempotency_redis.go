package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"smartparking/pkg/logger"
)

const redisIdempotencyPrefix = "idem:"

type redisCachedResponse struct {
	StatusCode int         `json:"status_code"`
	Headers    http.Header `json:"headers"`
	Body       []byte      `json:"body"`
	CreatedAt  time.Time   `json:"created_at"`
}

// RedisIdempotencyStore shares idempotency state across replicas. Redis
// failures are treated as cache misses; the request is simply processed again.
type RedisIdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

func NewRedisIdempotencyStore(client *redis.Client, ttl time.Duration, log *logger.Logger) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (s *RedisIdempotencyStore) Get(key string) (*CachedResponse, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.client.Get(ctx, redisIdempotencyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("Idempotency store read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var cached redisCachedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		s.log.Warn("Idempotency store entry corrupt", "key", key, "error", err)
		return nil, false
	}

	return &CachedResponse{
		StatusCode: cached.StatusCode,
		Headers:    cached.Headers,
		Body:       cached.Body,
		CreatedAt:  cached.CreatedAt,
	}, true
}

func (s *RedisIdempotencyStore) Set(key string, response *CachedResponse) {
	data, err := json.Marshal(redisCachedResponse{
		StatusCode: response.StatusCode,
		Headers:    response.Headers,
		Body:       response.Body,
		CreatedAt:  response.CreatedAt,
	})
	if err != nil {
		s.log.Warn("Idempotency store encode failed", "key", key, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.client.Set(ctx, redisIdempotencyPrefix+key, data, s.ttl).Err(); err != nil {
		s.log.Warn("Idempotency store write failed", "key", key, "error", err)
	}
}

func (s *RedisIdempotencyStore) Stop() {}

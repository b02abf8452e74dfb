package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/shortlink/internal/shortener"
)

// RedisStore is a Redis implementation of shortener.Store. SETNX enforces
// the uniqueness invariant; values are JSON documents so created_at
// survives the round trip.
type RedisStore struct {
	client *redis.Client
	prefix string
}

type redisMapping struct {
	OriginalURL string    `json:"originalUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewRedisStore creates a new Redis-backed mapping store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "shortlink:code:",
	}
}

func (r *RedisStore) Insert(ctx context.Context, mapping *shortener.Mapping) error {
	payload, err := json.Marshal(redisMapping{
		OriginalURL: mapping.OriginalURL,
		CreatedAt:   mapping.CreatedAt,
	})
	if err != nil {
		return err
	}

	ok, err := r.client.SetNX(ctx, r.prefix+string(mapping.Code), payload, 0).Result()
	if err != nil {
		return err
	}

	if !ok {
		return shortener.ErrCodeExists
	}

	return nil
}

func (r *RedisStore) GetByCode(ctx context.Context, code shortener.Code) (*shortener.Mapping, error) {
	payload, err := r.client.Get(ctx, r.prefix+string(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	var stored redisMapping
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, err
	}

	return &shortener.Mapping{
		Code:        code,
		OriginalURL: stored.OriginalURL,
		CreatedAt:   stored.CreatedAt,
	}, nil
}

func (r *RedisStore) DeleteByCode(ctx context.Context, code shortener.Code) error {
	// DEL on a missing key is a no-op, which keeps delete idempotent.
	return r.client.Del(ctx, r.prefix+string(code)).Err()
}

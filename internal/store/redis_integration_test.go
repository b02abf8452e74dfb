//go:build integration

package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/shortlink/internal/shortener"
	"github.com/serroba/shortlink/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

func TestRedisStoreIntegration(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr: getRedisAddr(),
	})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	s := store.NewRedisStore(client)

	t.Run("insert and get mapping", func(t *testing.T) {
		mapping := testMapping("itgtest1")

		err := s.Insert(ctx, mapping)
		require.NoError(t, err)

		got, err := s.GetByCode(ctx, mapping.Code)
		require.NoError(t, err)
		assert.Equal(t, mapping.OriginalURL, got.OriginalURL)
		assert.WithinDuration(t, mapping.CreatedAt, got.CreatedAt, 0)

		// Cleanup
		client.Del(ctx, "shortlink:code:itgtest1")
	})

	t.Run("duplicate insert returns ErrCodeExists", func(t *testing.T) {
		mapping := testMapping("itgtest2")
		require.NoError(t, s.Insert(ctx, mapping))

		err := s.Insert(ctx, testMapping("itgtest2"))
		assert.ErrorIs(t, err, shortener.ErrCodeExists)

		client.Del(ctx, "shortlink:code:itgtest2")
	})

	t.Run("get missing code returns ErrNotFound", func(t *testing.T) {
		_, err := s.GetByCode(ctx, "itgmissing")
		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		mapping := testMapping("itgtest3")
		require.NoError(t, s.Insert(ctx, mapping))

		require.NoError(t, s.DeleteByCode(ctx, mapping.Code))
		require.NoError(t, s.DeleteByCode(ctx, mapping.Code))

		_, err := s.GetByCode(ctx, mapping.Code)
		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})
}

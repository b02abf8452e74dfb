package container

import (
	"testing"

	"github.com/samber/do"
	"github.com/serroba/shortlink/internal/shortener"
	"github.com/serroba/shortlink/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOptions() *Options {
	return &Options{
		Port:       8888,
		CodeLength: 6,
		Backend:    BackendMemory,
		UIUsername: "admin",
		UIPassword: "secret",
		APIKey:     "key",
		LogFormat:  "console",
	}
}

func TestOptionsValidate(t *testing.T) {
	t.Run("accepts complete configuration", func(t *testing.T) {
		require.NoError(t, validOptions().Validate())
	})

	t.Run("rejects missing ui credentials", func(t *testing.T) {
		opts := validOptions()
		opts.UIPassword = ""

		assert.Error(t, opts.Validate())
	})

	t.Run("rejects missing api key", func(t *testing.T) {
		opts := validOptions()
		opts.APIKey = ""

		assert.Error(t, opts.Validate())
	})

	t.Run("rejects postgres backend without dsn", func(t *testing.T) {
		opts := validOptions()
		opts.Backend = BackendPostgres

		assert.Error(t, opts.Validate())
	})
}

func TestOptionsBaseURL(t *testing.T) {
	opts := validOptions()
	assert.Equal(t, "http://localhost:8888", opts.baseURL())

	opts.BaseURL = "https://sho.rt"
	assert.Equal(t, "https://sho.rt", opts.baseURL())
}

func TestStorePackage(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		injector := do.New()
		do.ProvideValue(injector, validOptions())
		StorePackage(injector)

		s, err := do.Invoke[shortener.Store](injector)
		require.NoError(t, err)
		assert.IsType(t, &store.MemoryStore{}, s)
	})

	t.Run("unknown backend fails", func(t *testing.T) {
		opts := validOptions()
		opts.Backend = "cassandra"

		injector := do.New()
		do.ProvideValue(injector, opts)
		StorePackage(injector)

		_, err := do.Invoke[shortener.Store](injector)
		assert.Error(t, err)
	})
}

package container

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/shortlink/internal/auth"
	"github.com/serroba/shortlink/internal/events"
	"github.com/serroba/shortlink/internal/handlers"
	"github.com/serroba/shortlink/internal/health"
	"github.com/serroba/shortlink/internal/messaging"
	"github.com/serroba/shortlink/internal/middleware"
	"github.com/serroba/shortlink/internal/shortener"
	"github.com/serroba/shortlink/internal/store"
	"go.uber.org/zap"
)

// Backend names accepted by --backend.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

const auditConsumerGroup = "shortlink-audit"

// Options is the configuration surface shared by all binaries. Secrets have
// no defaults on purpose: a deployment that does not set them cannot start.
type Options struct {
	Port        int    `default:"8888"           help:"Port to listen on"                                         short:"p"`
	BaseURL     string `help:"Public base URL for short links, defaults to http://localhost:<port>" name:"base-url"`
	CodeLength  int    `default:"6"              help:"Length of generated short codes"                           short:"c"`
	Backend     string `default:"memory"         enum:"memory,postgres,redis" help:"Mapping store backend"`
	PostgresDSN string `help:"PostgreSQL connection string, required for the postgres backend"      name:"postgres-dsn"`
	RedisAddr   string `default:"localhost:6379" help:"Redis server address"                                      short:"r"`
	UIUsername  string `help:"Basic auth username for the HTML UI"                                  name:"ui-username"`
	UIPassword  string `help:"Basic auth password for the HTML UI"                                  name:"ui-password"`
	APIKey      string `help:"Key expected in the X-API-Key header on API requests"                 name:"api-key"`
	LogFormat   string `default:"console"        enum:"console,json" help:"Log output format"       name:"log-format"`
}

// Validate rejects configurations the server must not start with.
func (o *Options) Validate() error {
	if o.UIUsername == "" || o.UIPassword == "" {
		return errors.New("ui-username and ui-password must be set")
	}

	if o.APIKey == "" {
		return errors.New("api-key must be set")
	}

	if o.Backend == BackendPostgres && o.PostgresDSN == "" {
		return errors.New("postgres-dsn must be set for the postgres backend")
	}

	return nil
}

func (o *Options) baseURL() string {
	if o.BaseURL != "" {
		return o.BaseURL
	}

	return fmt.Sprintf("http://localhost:%d", o.Port)
}

func (o *Options) credentials() auth.Credentials {
	return auth.Credentials{
		UIUsername: o.UIUsername,
		UIPassword: o.UIPassword,
		APIKey:     o.APIKey,
	}
}

// LoggerPackage provides the zap logger.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		options := do.MustInvoke[*Options](i)

		if options.LogFormat == "json" {
			return zap.NewProduction()
		}

		return zap.NewDevelopment()
	})
}

// RedisPackage provides the redis client used for messaging and, with the
// redis backend, for mapping storage.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*redis.Client, error) {
		options := do.MustInvoke[*Options](i)

		return redis.NewClient(&redis.Options{Addr: options.RedisAddr}), nil
	})
}

// PostgresPackage provides the pgx pool. Only invoked for the postgres
// backend.
func PostgresPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*pgxpool.Pool, error) {
		options := do.MustInvoke[*Options](i)

		pool, err := pgxpool.New(context.Background(), options.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}

		return pool, nil
	})
}

// StorePackage provides the mapping store selected by --backend. The
// postgres backend has its schema applied here, before the first request.
func StorePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (shortener.Store, error) {
		options := do.MustInvoke[*Options](i)

		switch options.Backend {
		case BackendMemory:
			return store.NewMemoryStore(), nil
		case BackendPostgres:
			pool := do.MustInvoke[*pgxpool.Pool](i)

			pgStore := store.NewPostgresStore(pool)
			if err := pgStore.EnsureSchema(context.Background()); err != nil {
				return nil, fmt.Errorf("applying schema: %w", err)
			}

			return pgStore, nil
		case BackendRedis:
			return store.NewRedisStore(do.MustInvoke[*redis.Client](i)), nil
		default:
			return nil, fmt.Errorf("unknown backend %q", options.Backend)
		}
	})
}

// ServicePackage provides the mapping service with its code generator.
func ServicePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*shortener.Service, error) {
		options := do.MustInvoke[*Options](i)

		generator, err := shortener.NewGenerator(options.CodeLength)
		if err != nil {
			return nil, fmt.Errorf("creating code generator: %w", err)
		}

		return shortener.NewService(
			do.MustInvoke[shortener.Store](i),
			generator,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
}

// PublisherGroupPackage provides the redis stream publisher behind the
// mapping lifecycle events.
func PublisherGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
			Client: do.MustInvoke[*redis.Client](i),
		}, watermill.NopLogger{})
		if err != nil {
			return nil, fmt.Errorf("creating publisher: %w", err)
		}

		return messaging.NewPublisherGroup(publisher), nil
	})
}

// ConsumerGroupPackage provides the audit trail consumers for the mapping
// lifecycle topics.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		logger := do.MustInvoke[*zap.Logger](i)

		subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        do.MustInvoke[*redis.Client](i),
			ConsumerGroup: auditConsumerGroup,
		}, watermill.NopLogger{})
		if err != nil {
			return nil, fmt.Errorf("creating subscriber: %w", err)
		}

		audit := events.NewAuditLog(logger)

		group := messaging.NewConsumerGroup(subscriber, logger)
		group.Add(messaging.NewConsumer(subscriber, events.TopicMappingCreated, audit.RecordCreated, logger))
		group.Add(messaging.NewConsumer(subscriber, events.TopicMappingDeleted, audit.RecordDeleted, logger))

		return group, nil
	})
}

// HTTPPackage provides the mux with all routes registered: the API with its
// docs, the UI, the health endpoint, and the wildcard redirect.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*chi.Mux, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)
		service := do.MustInvoke[*shortener.Service](i)
		publisherGroup := do.MustInvoke[*messaging.PublisherGroup](i)

		router := chi.NewMux()
		router.Use(middleware.RequestLogger(logger))
		router.Use(middleware.Recoverer(logger))

		config := huma.DefaultConfig("shortlink", "1.0.0")
		config.DocsPath = "/api-docs"
		api := humachi.New(router, config)

		checks := map[string]health.Checker{
			"redis": health.NewRedisChecker(do.MustInvoke[*redis.Client](i)),
		}
		if options.Backend == BackendPostgres {
			checks["postgres"] = health.NewPostgresChecker(do.MustInvoke[*pgxpool.Pool](i))
		}

		health.RegisterRoutes(api, health.NewHandler(checks))

		publishCreated := messaging.NewPublishFunc[events.MappingCreated](
			publisherGroup.Publisher(), events.TopicMappingCreated)
		publishDeleted := messaging.NewPublishFunc[events.MappingDeleted](
			publisherGroup.Publisher(), events.TopicMappingDeleted)

		apiHandler := handlers.NewAPIHandler(service, options.baseURL(), publishCreated, publishDeleted, logger)
		webHandler := handlers.NewWebHandler(service, options.baseURL(), publishCreated, logger)

		handlers.RegisterRoutes(router, api, apiHandler, webHandler, options.credentials())

		return router, nil
	})
}

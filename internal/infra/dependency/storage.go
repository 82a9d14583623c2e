package dependency

import (
	"context"
	"fmt"

	"github.com/finance-tracker/paycycle/config"
	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/infra/cache"
	"github.com/finance-tracker/paycycle/internal/infra/db"
	"github.com/finance-tracker/paycycle/internal/integration/adapters"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/paycycle/internal/integration/persistence"
	"github.com/finance-tracker/paycycle/internal/integration/persistence/model"
)

// Storage is the key-value store selected by configuration together with its lifecycle hooks.
// Locker serializes writes per user; it is shared across instances only for the redis backend.
type Storage struct {
	Backend     string
	Store       adapter.KeyValueStore
	Locker      adapter.UserLocker
	HealthCheck controller.StorageHealthChecker
	Close       func() error
}

// NewStorage connects the configured storage backend.
func NewStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.Storage.Backend {
	case config.StorageRedis:
		client, err := cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Backend: config.StorageRedis,
			Store:   persistence.NewRedisStore(client, cfg.Redis.KeyPrefix),
			Locker: adapters.NewRedisUserLocker(
				client,
				cfg.Redis.KeyPrefix+"lock:",
				cfg.Storage.LockTTL,
				cfg.Storage.LockWait,
			),
			HealthCheck: func(ctx context.Context) bool {
				return cache.HealthCheck(ctx, client)
			},
			Close: client.Close,
		}, nil

	case config.StorageDatabase:
		database, err := db.NewConnection(&cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(&model.KeyValueModel{}); err != nil {
			_ = database.Close()
			return nil, err
		}
		return &Storage{
			Backend:     config.StorageDatabase,
			Store:       persistence.NewDatabaseStore(database.DB()),
			Locker:      adapters.NewLocalUserLocker(cfg.Storage.LockWait),
			HealthCheck: database.HealthCheck,
			Close:       database.Close,
		}, nil

	case config.StorageMemory:
		return &Storage{
			Backend:     config.StorageMemory,
			Store:       persistence.NewMemoryStore(),
			Locker:      adapters.NewLocalUserLocker(cfg.Storage.LockWait),
			HealthCheck: func(context.Context) bool { return true },
			Close:       func() error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

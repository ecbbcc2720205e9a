package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/survey-manager/survey-backend/config"
	"github.com/survey-manager/survey-backend/internal/storage/cache"
	"github.com/survey-manager/survey-backend/internal/storage/postgres"
)

// OpenDB connects to Postgres and applies the schema.
func OpenDB(ctx context.Context, cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if err := postgres.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("db migrate: %w", err)
	}

	return db, nil
}

func OpenCache(ctx context.Context, cfg *config.CacheConfig) (*redis.Client, error) {
	client, err := cache.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("cache connect: %w", err)
	}
	return client, nil
}

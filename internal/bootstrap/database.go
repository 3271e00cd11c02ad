package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/pinehollow/storefront/config"
)

// ConnectMongo establishes a connection to the document store. Returns
// (nil, nil) when no URL is configured; callers treat a nil database as
// "directory and content features disabled".
func ConnectMongo(ctx context.Context, cfg config.MongoConfig, logger *slog.Logger) (*mongo.Database, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if pingErr := client.Ping(pingCtx, readpref.Primary()); pingErr != nil {
		if closeErr := client.Disconnect(context.Background()); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("disconnect mongodb: %w", closeErr))
		}
		return nil, fmt.Errorf("ping mongodb: %w", pingErr)
	}

	if logger != nil {
		logger.Info("mongodb connected", "database", cfg.Database)
	}

	return client.Database(cfg.Database), nil
}

// ConnectRedis establishes a connection to Redis. Returns (nil, nil) when
// no URL is configured.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if logger != nil {
		logger.Info("redis connected", "addr", opt.Addr)
	}

	return client, nil
}

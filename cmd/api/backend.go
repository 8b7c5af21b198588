// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/studyhub/internal/api"
	"github.com/taibuivan/studyhub/internal/core/content"
	"github.com/taibuivan/studyhub/internal/platform/config"
	"github.com/taibuivan/studyhub/internal/platform/migration"
	mongostore "github.com/taibuivan/studyhub/internal/platform/mongo"
	pgstore "github.com/taibuivan/studyhub/internal/platform/postgres"
	redisstore "github.com/taibuivan/studyhub/internal/platform/redis"
)

// backend holds the connections of the configured store driver.
type backend struct {
	driver string
	log    *slog.Logger

	pool  *pgxpool.Pool
	mongo *mongostore.Client
	cache *goredis.Client
	ttl   time.Duration
}

// openBackend connects the store selected by STORE_DRIVER and, when
// REDIS_URL is set, the record cache.
func openBackend(ctx context.Context, cfg *config.Config, log *slog.Logger) (*backend, error) {
	b := &backend{driver: cfg.StoreDriver, log: log, ttl: cfg.CacheTTL}

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, pgstore.Options{
			MaxConns:         cfg.DBMaxConns,
			MinConns:         cfg.DBMinConns,
			StatementTimeout: cfg.DBStatementTimeout,
		}, log)
		if err != nil {
			return nil, err
		}
		b.pool = pool

		// Migrations are idempotent.
		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			b.Close()
			return nil, err
		}

	case config.DriverMongo:
		client, err := mongostore.NewClient(ctx, cfg.MongoURI, cfg.MongoDatabase, log)
		if err != nil {
			return nil, err
		}
		b.mongo = client

	default:
		log.Warn("memory_store_selected", slog.String("hint", "records are lost on restart"))
	}

	if cfg.RedisURL != "" {
		client, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.cache = client
	}

	return b, nil
}

// HealthDependencies exposes a readiness check per open connection.
func (b *backend) HealthDependencies() api.HealthDependencies {
	var deps api.HealthDependencies
	if b.pool != nil {
		deps.CheckPostgres = func(ctx context.Context) error { return pgstore.Ping(ctx, b.pool) }
	}
	if b.mongo != nil {
		deps.CheckMongo = b.mongo.Ping
	}
	if b.cache != nil {
		deps.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, b.cache) }
	}
	return deps
}

// Close releases every open connection.
func (b *backend) Close() {
	if b.pool != nil {
		b.log.Info("closing postgres pool")
		b.pool.Close()
	}
	if b.mongo != nil {
		b.log.Info("closing mongo client")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := b.mongo.Close(ctx); err != nil {
			b.log.Error("mongo close error", slog.Any("error", err))
		}
	}
	if b.cache != nil {
		b.log.Info("closing redis client")
		if err := b.cache.Close(); err != nil {
			b.log.Error("redis close error", slog.Any("error", err))
		}
	}
}

// newStore builds the store of one resource on the configured backend.
func newStore[T content.Record](b *backend, resource content.Resource[T]) content.Store[T] {
	var store content.Store[T]
	switch b.driver {
	case config.DriverPostgres:
		store = content.NewPostgresRepository(b.pool, resource)
	case config.DriverMongo:
		store = content.NewMongoRepository(b.mongo.Database().Collection(resource.Collection), resource)
	default:
		store = content.NewMemoryStore(resource)
	}

	if b.cache != nil {
		store = content.NewCachedStore(store, b.cache, resource, b.ttl)
	}
	return store
}

// newHandler wires one resource from store to HTTP surface.
func newHandler[T content.Record](b *backend, resource content.Resource[T], log *slog.Logger) *content.Handler[T] {
	service := content.NewService(newStore(b, resource), resource, log)
	return content.NewHandler(service, resource)
}

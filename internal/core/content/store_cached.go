// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/studyhub/internal/platform/constants"
	"github.com/taibuivan/studyhub/internal/platform/ctxutil"
	"github.com/taibuivan/studyhub/internal/platform/listing"
	"github.com/taibuivan/studyhub/pkg/pagination"
)

// CachedStore puts a Redis read-through cache in front of single-record reads.
//
// Listings always reach the backing store. Writes replace the cached record
// with a short-lived tombstone after the backing store accepts them, and
// reads only fill a key that is absent. A read that fetched the record before
// a concurrent write committed therefore cannot cache the old version, unless
// it outlives [constants.CacheInvalidationHold]. Cache failures are logged and
// never fail a request.
type CachedStore[T Record] struct {
	next     Store[T]
	cache    redis.Cmdable
	resource Resource[T]
	ttl      time.Duration
}

// NewCachedStore wraps a store with a cache whose entries live for ttl.
func NewCachedStore[T Record](next Store[T], cache redis.Cmdable, resource Resource[T], ttl time.Duration) *CachedStore[T] {
	return &CachedStore[T]{next: next, cache: cache, resource: resource, ttl: ttl}
}

func (store *CachedStore[T]) key(id string) string {
	return constants.CachePrefixRecord + store.resource.Name + ":" + id
}

func (store *CachedStore[T]) List(ctx context.Context, filter Filter, query listing.Query) (pagination.Page[T], error) {
	return store.next.List(ctx, filter, query)
}

func (store *CachedStore[T]) Get(ctx context.Context, id string) (T, error) {
	key := store.key(id)

	fill := true
	raw, err := store.cache.Get(ctx, key).Bytes()
	switch {
	case err == nil && string(raw) == constants.CacheTombstone:
		fill = false
	case err == nil:
		record := store.resource.New()
		if err := json.Unmarshal(raw, record); err == nil {
			return record, nil
		}
		store.warn(ctx, "cache_decode_failed", key, err)
	case !errors.Is(err, redis.Nil):
		store.warn(ctx, "cache_read_failed", key, err)
	}

	record, err := store.next.Get(ctx, id)
	if err != nil || !fill {
		return record, err
	}

	if encoded, err := json.Marshal(record); err == nil {
		// SetNX loses to a tombstone written while the store was read
		if err := store.cache.SetNX(ctx, key, encoded, store.ttl).Err(); err != nil {
			store.warn(ctx, "cache_write_failed", key, err)
		}
	}
	return record, nil
}

func (store *CachedStore[T]) Create(ctx context.Context, record T) error {
	return store.next.Create(ctx, record)
}

func (store *CachedStore[T]) Update(ctx context.Context, record T) error {
	if err := store.next.Update(ctx, record); err != nil {
		return err
	}
	store.invalidate(ctx, record.Metadata().ID)
	return nil
}

func (store *CachedStore[T]) Delete(ctx context.Context, id string) error {
	if err := store.next.Delete(ctx, id); err != nil {
		return err
	}
	store.invalidate(ctx, id)
	return nil
}

func (store *CachedStore[T]) invalidate(ctx context.Context, id string) {
	key := store.key(id)
	if err := store.cache.Set(ctx, key, constants.CacheTombstone, constants.CacheInvalidationHold).Err(); err != nil {
		store.warn(ctx, "cache_invalidate_failed", key, err)
	}
}

func (store *CachedStore[T]) warn(ctx context.Context, event, key string, err error) {
	ctxutil.GetLogger(ctx).WarnContext(ctx, event,
		slog.String("key", key),
		slog.Any("error", err),
	)
}

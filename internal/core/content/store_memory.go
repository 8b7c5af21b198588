// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"sync"

	"github.com/taibuivan/studyhub/internal/platform/apperr"
	"github.com/taibuivan/studyhub/internal/platform/listing"
	"github.com/taibuivan/studyhub/pkg/pagination"
	"github.com/taibuivan/studyhub/pkg/slice"
)

// MemoryStore keeps records in process. Records are cloned on the way in and
// out, so callers never share state with the store.
type MemoryStore[T Record] struct {
	resource Resource[T]

	mu      sync.RWMutex
	records map[string]T
	order   []string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore[T Record](resource Resource[T]) *MemoryStore[T] {
	return &MemoryStore[T]{resource: resource, records: make(map[string]T)}
}

func (store *MemoryStore[T]) List(ctx context.Context, filter Filter, query listing.Query) (pagination.Page[T], error) {
	return listing.List(ctx, store.snapshot, store.resource.Predicate(filter), query, store.resource.Keys())
}

func (store *MemoryStore[T]) snapshot(context.Context) ([]T, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return slice.Map(store.order, func(id string) T {
		return store.resource.Clone(store.records[id])
	}), nil
}

func (store *MemoryStore[T]) Get(_ context.Context, id string) (T, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	record, ok := store.records[id]
	if !ok {
		var zero T
		return zero, apperr.NotFound()
	}
	return store.resource.Clone(record), nil
}

func (store *MemoryStore[T]) Create(_ context.Context, record T) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	id := record.Metadata().ID
	if _, exists := store.records[id]; !exists {
		store.order = append(store.order, id)
	}
	store.records[id] = store.resource.Clone(record)
	return nil
}

func (store *MemoryStore[T]) Update(_ context.Context, record T) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	id := record.Metadata().ID
	if _, ok := store.records[id]; !ok {
		return apperr.NotFound()
	}
	store.records[id] = store.resource.Clone(record)
	return nil
}

func (store *MemoryStore[T]) Delete(_ context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.records[id]; !ok {
		return apperr.NotFound()
	}
	delete(store.records, id)
	store.order = slice.Filter(store.order, func(other string) bool { return other != id })
	return nil
}

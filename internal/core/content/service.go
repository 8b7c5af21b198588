// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/taibuivan/studyhub/internal/platform/listing"
	"github.com/taibuivan/studyhub/internal/platform/sec"
	"github.com/taibuivan/studyhub/internal/platform/validate"
	"github.com/taibuivan/studyhub/pkg/pagination"
)

var tracer = otel.Tracer("github.com/taibuivan/studyhub/internal/core/content")

// Service implements the CRUD operations of one resource.
//
// Input reaching the service has already passed the route's rule table, so
// the service only decodes, stamps metadata and normalizes.
type Service[T Record] struct {
	store    Store[T]
	resource Resource[T]
	logger   *slog.Logger
	now      func() time.Time
}

// ServiceOption customizes a [Service].
type ServiceOption[T Record] func(*Service[T])

// WithServiceClock overrides the clock used for timestamps.
func WithServiceClock[T Record](now func() time.Time) ServiceOption[T] {
	return func(service *Service[T]) { service.now = now }
}

// NewService creates a service over a store.
func NewService[T Record](store Store[T], resource Resource[T], logger *slog.Logger, opts ...ServiceOption[T]) *Service[T] {
	service := &Service[T]{
		store:    store,
		resource: resource,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// List returns one page of records matching the resource filters in values.
func (service *Service[T]) List(ctx context.Context, values url.Values, query listing.Query) (page pagination.Page[T], err error) {
	ctx, span := tracer.Start(ctx, service.resource.Name+".list", trace.WithAttributes(
		attribute.Int("listing.page", query.Page),
		attribute.Int("listing.limit", query.Limit),
		attribute.String("listing.sort_by", query.SortBy),
	))
	defer func() { finish(span, err) }()

	return service.store.List(ctx, service.resource.Filter(values), query)
}

// Get returns one record.
func (service *Service[T]) Get(ctx context.Context, id string) (record T, err error) {
	ctx, span := tracer.Start(ctx, service.resource.Name+".get", trace.WithAttributes(attribute.String("record.id", id)))
	defer func() { finish(span, err) }()

	return service.store.Get(ctx, id)
}

// Create decodes a validated body into a new record owned by the identity.
func (service *Service[T]) Create(ctx context.Context, identity *sec.Identity, body []byte) (record T, err error) {
	ctx, span := tracer.Start(ctx, service.resource.Name+".create")
	defer func() { finish(span, err) }()

	record = service.resource.New()
	if err := decode(body, record); err != nil {
		return record, err
	}

	now := service.now().UTC()
	*record.Metadata() = Meta{
		ID:        NewID(),
		CreatedBy: identity.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	service.resource.Normalize(record)

	if err := service.store.Create(ctx, record); err != nil {
		return record, err
	}

	service.logger.InfoContext(ctx, service.resource.Name+"_created",
		slog.String("id", record.Metadata().ID),
		slog.String("created_by", identity.ID),
	)
	return record, nil
}

// Update applies a validated partial body to an existing record.
// Fields absent from the body keep their stored values.
func (service *Service[T]) Update(ctx context.Context, id string, body []byte) (record T, err error) {
	ctx, span := tracer.Start(ctx, service.resource.Name+".update", trace.WithAttributes(attribute.String("record.id", id)))
	defer func() { finish(span, err) }()

	record, err = service.store.Get(ctx, id)
	if err != nil {
		return record, err
	}

	meta := *record.Metadata()
	if err := decode(body, record); err != nil {
		return record, err
	}

	meta.UpdatedAt = service.now().UTC()
	*record.Metadata() = meta
	service.resource.Normalize(record)

	if err := service.store.Update(ctx, record); err != nil {
		return record, err
	}

	service.logger.InfoContext(ctx, service.resource.Name+"_updated", slog.String("id", id))
	return record, nil
}

// Delete removes a record.
func (service *Service[T]) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracer.Start(ctx, service.resource.Name+".delete", trace.WithAttributes(attribute.String("record.id", id)))
	defer func() { finish(span, err) }()

	if err := service.store.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.WarnContext(ctx, service.resource.Name+"_deleted", slog.String("id", id))
	return nil
}

func decode(body []byte, record any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, record); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

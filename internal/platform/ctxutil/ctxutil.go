// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/studyhub/internal/platform/ctxkey"
	"github.com/taibuivan/studyhub/internal/platform/listing"
	"github.com/taibuivan/studyhub/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the request logger, or the default logger outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := LookupLogger(ctx); ok {
		return logger
	}
	return slog.Default()
}

// LookupLogger reports the request logger, if a stage attached one.
func LookupLogger(ctx context.Context) (*slog.Logger, bool) {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	return logger, ok && logger != nil
}

// # Identity & Access

// WithIdentity returns a new context with the verified caller attached.
func WithIdentity(ctx context.Context, identity *sec.Identity) context.Context {
	return context.WithValue(ctx, ctxkey.KeyIdentity, identity)
}

// GetIdentity retrieves the [*sec.Identity] from the [context.Context].
// It returns nil for unauthenticated requests.
func GetIdentity(ctx context.Context) *sec.Identity {
	identity, ok := ctx.Value(ctxkey.KeyIdentity).(*sec.Identity)
	if !ok {
		return nil
	}
	return identity
}

// # Listing

// WithListing returns a new context carrying a normalized listing query.
func WithListing(ctx context.Context, query listing.Query) context.Context {
	return context.WithValue(ctx, ctxkey.KeyListing, query)
}

// GetListing retrieves the normalized listing query, if a stage attached one.
func GetListing(ctx context.Context) (listing.Query, bool) {
	query, ok := ctx.Value(ctxkey.KeyListing).(listing.Query)
	return query, ok
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package constants holds the timeouts, limits, header names and key
// prefixes shared across layers.
//
// Values that operators tune live in [config]; these are fixed at build time.
package constants

import "time"

// # Metadata

const (
	// AppVersion is reported by the CLI and the tracing resource.
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout outlasts [GlobalRequestTimeout] so a timed out handler can still answer.
	DefaultWriteTimeout = GlobalRequestTimeout + 5*time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// ReadinessTimeout bounds each dependency ping of the readiness probe.
	ReadinessTimeout = 2 * time.Second
)

// # Request Limits

const (
	// MaxBodyBytes caps the JSON body accepted by write endpoints.
	MaxBodyBytes = 1 << 20
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Headers

const (
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderContentType   = "Content-Type"
	HeaderRetryAfter    = "Retry-After"
)

// # JSON Field Identifiers

const (
	FieldStatus    = "status"
	FieldTimestamp = "timestamp"
	FieldChecks    = "checks"
)

// # Cache Taxonomy

const (
	// CachePrefixRecord prefixes cached single records: "<prefix><resource>:<id>".
	CachePrefixRecord = "content:record:"

	// CacheTombstone marks a record key as recently invalidated. Reads that
	// find it go to the store and do not repopulate the key.
	CacheTombstone = "!"

	// CacheInvalidationHold is how long a tombstone blocks repopulation.
	CacheInvalidationHold = 5 * time.Second
)

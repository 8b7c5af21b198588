// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey holds the context keys the request pipeline stores values under.
//
// Access goes through [ctxutil]; nothing else should read these keys directly.
package ctxkey

// key is unexported so no other package can build a colliding key.
type key uint8

const (
	// KeyRequestID carries the X-Request-ID correlation value.
	KeyRequestID key = iota + 1

	// KeyIdentity carries the verified caller ([sec.Identity]).
	KeyIdentity

	// KeyListing carries the normalized listing query ([listing.Query]).
	KeyListing

	// KeyLogger carries the per-request [*log/slog.Logger].
	KeyLogger
)

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides time-ordered correlation identifiers for requests.

It wraps the standard UUID library to generate Version 7 values, so request
ids sort by arrival time in aggregated logs.

Record identifiers are not UUIDs; they are 24-character hex ObjectIDs
shared by every store driver.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
//
// If the time-ordered generator fails it falls back to a random v4 value,
// so callers always get an identifier.
func New() string {

	// Create a new version 7 UUID (time-sortable)
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	// Convert the UUID to a string
	return id.String()
}

// Valid reports whether s is a canonical UUID of any version.
//
// Client-supplied request ids that fail this check are replaced.
func Valid(s string) bool {
	return uuid.Validate(s) == nil && len(s) == 36
}

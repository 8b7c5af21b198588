// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"net/url"
	"time"

	"github.com/taibuivan/studyhub/internal/platform/database/schema"
	"github.com/taibuivan/studyhub/internal/platform/listing"
	"github.com/taibuivan/studyhub/internal/platform/validate"
)

// Resource describes one study resource to the framework.
//
// # Contract
//
// T is a pointer to a struct embedding [Meta]. The descriptor must be fully
// populated; the framework does not fall back for missing functions.
type Resource[T Record] struct {
	// Name is the singular resource name used in logs and cache keys.
	Name string
	// Table maps the record to its PostgreSQL table.
	Table schema.ContentTable
	// Collection is the MongoDB collection name.
	Collection string

	// Rules is the body rule table. Updates use it with every field optional.
	Rules validate.Table
	// Sortable is the sort whitelist for listings.
	Sortable listing.Sortable
	// FilterRules validate the resource filter parameters.
	FilterRules []validate.Rule
	// Filter builds storage-neutral conditions from validated query parameters.
	Filter func(values url.Values) Filter

	// New allocates an empty record.
	New func() T
	// Clone deep-copies a record.
	Clone func(record T) T
	// Attr returns a resource attribute by JSON field name.
	Attr func(record T, field string) any
	// Columns returns pointers to the attributes in [schema.ContentTable.Fields] order.
	Columns func(record T) []any
	// Normalize canonicalizes attributes after create and update.
	Normalize func(record T)
}

// Field returns any attribute of a record, metadata included.
func (r Resource[T]) Field(record T, field string) any {
	if value, ok := metaAttr(record.Metadata(), field); ok {
		return value
	}
	return r.Attr(record, field)
}

// Keys adapts the descriptor to the listing engine.
func (r Resource[T]) Keys() listing.Keys[T] {
	return listing.Keys[T]{
		Attr:      r.Field,
		CreatedAt: func(record T) time.Time { return record.Metadata().CreatedAt },
		ID:        func(record T) string { return record.Metadata().ID },
	}
}

// Predicate evaluates a filter against records in memory.
func (r Resource[T]) Predicate(filter Filter) listing.Predicate[T] {
	if len(filter) == 0 {
		return nil
	}
	return func(record T) bool {
		return filter.Match(func(field string) any { return r.Field(record, field) })
	}
}

// IDRule validates the {id} path parameter.
var IDRule = validate.Path(FieldID).Identifier().WithMessage("Invalid id")

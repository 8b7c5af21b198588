// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package content is the generic CRUD and listing framework shared by every
// study resource (notes, assignments, old questions, blogs).
//
// # Architecture
//
// A resource package declares a [Resource] descriptor: its record type, rule
// table, sort whitelist, filters and storage mapping. The framework turns
// that descriptor into a [Service], a [Handler] with the authorization
// pipeline mounted per route, and interchangeable [Store] backends.
package content

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taibuivan/studyhub/pkg/slice"
	"github.com/taibuivan/studyhub/pkg/slug"
)

// Meta is the server-managed part of every record.
type Meta struct {
	ID        string    `json:"id"        bson:"_id"`
	CreatedBy string    `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Metadata gives the framework access to the embedded [Meta].
func (m *Meta) Metadata() *Meta { return m }

// Record is implemented by pointers to resource structs embedding [Meta].
type Record interface {
	Metadata() *Meta
}

// Metadata field names, as they appear in JSON and in sort parameters.
const (
	FieldID        = "id"
	FieldCreatedBy = "createdBy"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// NewID returns a fresh record identifier: 24 lowercase hex characters.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// metaAttr resolves the metadata fields shared by all records.
func metaAttr(m *Meta, field string) (any, bool) {
	switch field {
	case FieldID:
		return m.ID, true
	case FieldCreatedBy:
		return m.CreatedBy, true
	case FieldCreatedAt:
		return m.CreatedAt, true
	case FieldUpdatedAt:
		return m.UpdatedAt, true
	}
	return nil, false
}

// # Normalization Helpers

// Trim trims every referenced string in place.
func Trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// Tags trims tags, drops empty ones and never returns nil.
func Tags(tags []string) []string {
	return slice.FilterMap(tags, strings.TrimSpace, func(tag string) bool { return tag != "" })
}

// Slug derives a URL slug from a title.
func Slug(title string) string {
	return slug.From(title)
}

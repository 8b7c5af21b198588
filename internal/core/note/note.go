// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package note defines study notes: free-form course material with optional
// SEO metadata and a publication flag.
package note

import (
	"slices"

	"github.com/taibuivan/studyhub/internal/core/content"
)

// Note is a study note.
type Note struct {
	content.Meta `bson:",inline"`

	Title           string   `json:"title"           bson:"title"`
	Content         string   `json:"content"         bson:"content"`
	Subject         string   `json:"subject"         bson:"subject"`
	Tags            []string `json:"tags"            bson:"tags"`
	IsPublished     bool     `json:"isPublished"     bson:"isPublished"`
	Slug            string   `json:"slug"            bson:"slug"`
	MetaTitle       string   `json:"metaTitle"       bson:"metaTitle"`
	MetaDescription string   `json:"metaDescription" bson:"metaDescription"`
}

// Global field names for validation, sorting and filtering
const (
	FieldTitle           = "title"
	FieldContent         = "content"
	FieldSubject         = "subject"
	FieldTags            = "tags"
	FieldIsPublished     = "isPublished"
	FieldSlug            = "slug"
	FieldMetaTitle       = "metaTitle"
	FieldMetaDescription = "metaDescription"
)

func (n *Note) attr(field string) any {
	switch field {
	case FieldTitle:
		return n.Title
	case FieldContent:
		return n.Content
	case FieldSubject:
		return n.Subject
	case FieldTags:
		return n.Tags
	case FieldIsPublished:
		return n.IsPublished
	case FieldSlug:
		return n.Slug
	case FieldMetaTitle:
		return n.MetaTitle
	case FieldMetaDescription:
		return n.MetaDescription
	}
	return nil
}

// columns follows [schema.Note] field order.
func (n *Note) columns() []any {
	return []any{&n.Title, &n.Content, &n.Subject, &n.Tags, &n.IsPublished, &n.Slug, &n.MetaTitle, &n.MetaDescription}
}

func (n *Note) clone() *Note {
	c := *n
	c.Tags = slices.Clone(n.Tags)
	return &c
}

func (n *Note) normalize() {
	content.Trim(&n.Title, &n.Content, &n.Subject, &n.MetaTitle, &n.MetaDescription)
	n.Tags = content.Tags(n.Tags)
	n.Slug = content.Slug(n.Title)
}

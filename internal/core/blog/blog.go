// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package blog defines published articles with an author and cover image.
package blog

import (
	"slices"

	"github.com/taibuivan/studyhub/internal/core/content"
)

// Blog is an article.
type Blog struct {
	content.Meta `bson:",inline"`

	Title           string   `json:"title"           bson:"title"`
	Content         string   `json:"content"         bson:"content"`
	Author          string   `json:"author"          bson:"author"`
	CoverImage      string   `json:"coverImage"      bson:"coverImage"`
	Tags            []string `json:"tags"            bson:"tags"`
	IsPublished     bool     `json:"isPublished"     bson:"isPublished"`
	Slug            string   `json:"slug"            bson:"slug"`
	MetaDescription string   `json:"metaDescription" bson:"metaDescription"`
}

// Global field names for validation, sorting and filtering
const (
	FieldTitle           = "title"
	FieldContent         = "content"
	FieldAuthor          = "author"
	FieldCoverImage      = "coverImage"
	FieldTags            = "tags"
	FieldIsPublished     = "isPublished"
	FieldSlug            = "slug"
	FieldMetaDescription = "metaDescription"
)

func (b *Blog) attr(field string) any {
	switch field {
	case FieldTitle:
		return b.Title
	case FieldContent:
		return b.Content
	case FieldAuthor:
		return b.Author
	case FieldCoverImage:
		return b.CoverImage
	case FieldTags:
		return b.Tags
	case FieldIsPublished:
		return b.IsPublished
	case FieldSlug:
		return b.Slug
	case FieldMetaDescription:
		return b.MetaDescription
	}
	return nil
}

// columns follows [schema.Blog] field order.
func (b *Blog) columns() []any {
	return []any{&b.Title, &b.Content, &b.Author, &b.CoverImage, &b.Tags, &b.IsPublished, &b.Slug, &b.MetaDescription}
}

func (b *Blog) clone() *Blog {
	c := *b
	c.Tags = slices.Clone(b.Tags)
	return &c
}

func (b *Blog) normalize() {
	content.Trim(&b.Title, &b.Content, &b.Author, &b.CoverImage, &b.MetaDescription)
	b.Tags = content.Tags(b.Tags)
	b.Slug = content.Slug(b.Title)
}

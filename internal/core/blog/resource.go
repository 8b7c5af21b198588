// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"net/url"

	"github.com/taibuivan/studyhub/internal/core/content"
	"github.com/taibuivan/studyhub/internal/platform/database/schema"
	"github.com/taibuivan/studyhub/internal/platform/listing"
	"github.com/taibuivan/studyhub/internal/platform/validate"
	"github.com/taibuivan/studyhub/pkg/convert"
)

// Filter parameters of the blog listing.
const (
	ParamSearch    = "q"
	ParamTag       = "tag"
	ParamPublished = "published"
	ParamAuthor    = "author"
)

// Rules is the body rule table for blogs.
var Rules = validate.Table{
	validate.Body(FieldTitle).NotEmpty().WithMessage("Title is required"),
	validate.Body(FieldContent).NotEmpty().WithMessage("Content is required"),
	validate.Body(FieldAuthor).MaxLength(100).Optional().WithMessage("Author must be at most 100 characters"),
	validate.Body(FieldCoverImage).MaxLength(500).Optional().WithMessage("Cover image must be at most 500 characters"),
	validate.Body(FieldTags).Array().Optional().WithMessage("Tags must be an array of strings"),
	validate.Body(FieldIsPublished).Boolean().Optional().WithMessage("isPublished must be a boolean"),
	validate.Body(FieldMetaDescription).MaxLength(160).Optional().WithMessage("Meta description must be at most 160 characters"),
}

// Resource describes blogs to the content framework.
var Resource = content.Resource[*Blog]{
	Name:       "blog",
	Table:      schema.Blog,
	Collection: "blogs",
	Rules:      Rules,
	Sortable: listing.Sortable{
		Fields:  []string{content.FieldCreatedAt, content.FieldUpdatedAt, FieldTitle},
		Default: content.FieldCreatedAt,
	},
	FilterRules: []validate.Rule{
		validate.Query(ParamPublished).Boolean().Optional().WithMessage("published must be true or false"),
	},
	Filter:    filter,
	New:       func() *Blog { return &Blog{} },
	Clone:     (*Blog).clone,
	Attr:      (*Blog).attr,
	Columns:   (*Blog).columns,
	Normalize: (*Blog).normalize,
}

func filter(values url.Values) content.Filter {
	var f content.Filter
	if q := values.Get(ParamSearch); q != "" {
		f = f.Search(q, FieldTitle, FieldContent)
	}
	if tag := values.Get(ParamTag); tag != "" {
		f = f.Has(FieldTags, tag)
	}
	if values.Has(ParamPublished) {
		f = f.Eq(FieldIsPublished, convert.ToBool(values.Get(ParamPublished)))
	}
	if author := values.Get(ParamAuthor); author != "" {
		f = f.Eq(FieldAuthor, author)
	}
	return f
}

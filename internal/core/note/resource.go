// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package note

import (
	"net/url"

	"github.com/taibuivan/studyhub/internal/core/content"
	"github.com/taibuivan/studyhub/internal/platform/database/schema"
	"github.com/taibuivan/studyhub/internal/platform/listing"
	"github.com/taibuivan/studyhub/internal/platform/validate"
	"github.com/taibuivan/studyhub/pkg/convert"
)

// Filter parameters of the note listing.
const (
	ParamSearch    = "q"
	ParamSubject   = "subject"
	ParamTag       = "tag"
	ParamPublished = "published"
)

// Rules is the body rule table for notes.
var Rules = validate.Table{
	validate.Body(FieldTitle).NotEmpty().WithMessage("Title is required"),
	validate.Body(FieldContent).NotEmpty().WithMessage("Content is required"),
	validate.Body(FieldSubject).MaxLength(100).Optional().WithMessage("Subject must be at most 100 characters"),
	validate.Body(FieldTags).Array().Optional().WithMessage("Tags must be an array of strings"),
	validate.Body(FieldIsPublished).Boolean().Optional().WithMessage("isPublished must be a boolean"),
	validate.Body(FieldMetaTitle).MaxLength(70).Optional().WithMessage("Meta title must be at most 70 characters"),
	validate.Body(FieldMetaDescription).MaxLength(160).Optional().WithMessage("Meta description must be at most 160 characters"),
}

// Resource describes notes to the content framework.
var Resource = content.Resource[*Note]{
	Name:       "note",
	Table:      schema.Note,
	Collection: "notes",
	Rules:      Rules,
	Sortable: listing.Sortable{
		Fields:  []string{content.FieldCreatedAt, content.FieldUpdatedAt, FieldTitle, FieldSubject},
		Default: content.FieldCreatedAt,
	},
	FilterRules: []validate.Rule{
		validate.Query(ParamPublished).Boolean().Optional().WithMessage("published must be true or false"),
	},
	Filter:    filter,
	New:       func() *Note { return &Note{} },
	Clone:     (*Note).clone,
	Attr:      (*Note).attr,
	Columns:   (*Note).columns,
	Normalize: (*Note).normalize,
}

func filter(values url.Values) content.Filter {
	var f content.Filter
	if q := values.Get(ParamSearch); q != "" {
		f = f.Search(q, FieldTitle, FieldContent)
	}
	if subject := values.Get(ParamSubject); subject != "" {
		f = f.Eq(FieldSubject, subject)
	}
	if tag := values.Get(ParamTag); tag != "" {
		f = f.Has(FieldTags, tag)
	}
	if values.Has(ParamPublished) {
		f = f.Eq(FieldIsPublished, convert.ToBool(values.Get(ParamPublished)))
	}
	return f
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content_test

import (
	"net/url"
	"slices"
	"strings"

	"github.com/taibuivan/studyhub/internal/core/content"
	"github.com/taibuivan/studyhub/internal/platform/database/schema"
	"github.com/taibuivan/studyhub/internal/platform/listing"
	"github.com/taibuivan/studyhub/internal/platform/validate"
)

// memo is a minimal resource used to exercise the framework.
type memo struct {
	content.Meta `bson:",inline"`
	Title        string   `json:"title" bson:"title"`
	Tags         []string `json:"tags"  bson:"tags"`
	Rank         int      `json:"rank"  bson:"rank"`
}

var memoTable = schema.ContentTable{
	Table:     "content.memo",
	ID:        "id",
	CreatedBy: "createdby",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	Fields: []schema.FieldColumn{
		{Field: "title", Column: "title"},
		{Field: "tags", Column: "tags"},
		{Field: "rank", Column: "rank"},
	},
}

var memoResource = content.Resource[*memo]{
	Name:       "memo",
	Table:      memoTable,
	Collection: "memos",
	Rules: validate.Table{
		validate.Body("title").NotEmpty().WithMessage("Title is required"),
		validate.Body("tags").Array().Optional().WithMessage("Tags must be an array"),
		validate.Body("rank").Integer(0).Optional().WithMessage("Rank must be a number"),
	},
	Sortable:    listing.Sortable{Fields: []string{"createdAt", "title", "rank"}, Default: "createdAt"},
	FilterRules: []validate.Rule{validate.Query("rank").Integer(0).Optional().WithMessage("Rank must be a number")},
	Filter: func(values url.Values) content.Filter {
		var filter content.Filter
		if q := values.Get("q"); q != "" {
			filter = filter.Search(q, "title")
		}
		if tag := values.Get("tag"); tag != "" {
			filter = filter.Has("tags", tag)
		}
		return filter
	},
	New: func() *memo { return &memo{} },
	Clone: func(m *memo) *memo {
		c := *m
		c.Tags = slices.Clone(m.Tags)
		return &c
	},
	Attr: func(m *memo, field string) any {
		switch field {
		case "title":
			return m.Title
		case "tags":
			return m.Tags
		case "rank":
			return m.Rank
		}
		return nil
	},
	Columns: func(m *memo) []any { return []any{&m.Title, &m.Tags, &m.Rank} },
	Normalize: func(m *memo) {
		m.Title = strings.TrimSpace(m.Title)
		m.Tags = content.Tags(m.Tags)
	},
}

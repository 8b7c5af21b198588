// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package assignment

import (
	"net/url"

	"github.com/taibuivan/studyhub/internal/core/content"
	"github.com/taibuivan/studyhub/internal/platform/database/schema"
	"github.com/taibuivan/studyhub/internal/platform/listing"
	"github.com/taibuivan/studyhub/internal/platform/validate"
)

// Filter parameters of the assignment listing.
const (
	ParamSearch    = "q"
	ParamSubject   = "subject"
	ParamPriority  = "priority"
	ParamDueAfter  = "dueAfter"
	ParamDueBefore = "dueBefore"
)

var priorities = []string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh)}

// Rules is the body rule table for assignments.
var Rules = validate.Table{
	validate.Body(FieldTitle).NotEmpty().WithMessage("Title is required"),
	validate.Body(FieldDescription).NotEmpty().WithMessage("Description is required"),
	validate.Body(FieldDueDate).ISODate().WithMessage("Valid due date is required"),
	validate.Body(FieldSubject).MaxLength(100).Optional().WithMessage("Subject must be at most 100 characters"),
	validate.Body(FieldPriority).OneOf(priorities...).Optional().WithMessage("Priority must be low, medium or high"),
}

// Resource describes assignments to the content framework.
var Resource = content.Resource[*Assignment]{
	Name:       "assignment",
	Table:      schema.Assignment,
	Collection: "assignments",
	Rules:      Rules,
	Sortable: listing.Sortable{
		Fields:  []string{content.FieldCreatedAt, content.FieldUpdatedAt, FieldTitle, FieldDueDate},
		Default: content.FieldCreatedAt,
	},
	FilterRules: []validate.Rule{
		validate.Query(ParamPriority).OneOf(priorities...).Optional().WithMessage("Priority must be low, medium or high"),
		validate.Query(ParamDueAfter).ISODate().Optional().WithMessage("dueAfter must be an ISO 8601 date"),
		validate.Query(ParamDueBefore).ISODate().Optional().WithMessage("dueBefore must be an ISO 8601 date"),
	},
	Filter:    filter,
	New:       func() *Assignment { return &Assignment{} },
	Clone:     (*Assignment).clone,
	Attr:      (*Assignment).attr,
	Columns:   (*Assignment).columns,
	Normalize: (*Assignment).normalize,
}

func filter(values url.Values) content.Filter {
	var f content.Filter
	if q := values.Get(ParamSearch); q != "" {
		f = f.Search(q, FieldTitle, FieldDescription)
	}
	if subject := values.Get(ParamSubject); subject != "" {
		f = f.Eq(FieldSubject, subject)
	}
	if priority := values.Get(ParamPriority); priority != "" {
		f = f.Eq(FieldPriority, priority)
	}
	if after, err := validate.ParseISODate(values.Get(ParamDueAfter)); err == nil {
		f = f.GTE(FieldDueDate, after.UTC())
	}
	if before, err := validate.ParseISODate(values.Get(ParamDueBefore)); err == nil {
		f = f.LTE(FieldDueDate, before.UTC())
	}
	return f
}

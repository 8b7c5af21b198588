// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package question

import (
	"net/url"

	"github.com/taibuivan/studyhub/internal/core/content"
	"github.com/taibuivan/studyhub/internal/platform/database/schema"
	"github.com/taibuivan/studyhub/internal/platform/listing"
	"github.com/taibuivan/studyhub/internal/platform/validate"
	"github.com/taibuivan/studyhub/pkg/convert"
)

// Filter parameters of the old question listing.
const (
	ParamSearch   = "q"
	ParamSubject  = "subject"
	ParamYear     = "year"
	ParamExamType = "examType"
	ParamTag      = "tag"
)

var examTypes = []string{string(ExamMidterm), string(ExamFinal), string(ExamQuiz), string(ExamOther)}

// Rules is the body rule table for old questions.
var Rules = validate.Table{
	validate.Body(FieldTitle).NotEmpty().WithMessage("Title is required"),
	validate.Body(FieldQuestion).NotEmpty().WithMessage("Question is required"),
	validate.Body(FieldAnswer).NotEmpty().WithMessage("Answer is required"),
	validate.Body(FieldSubject).NotEmpty().WithMessage("Subject is required"),
	validate.Body(FieldYear).Integer(MinYear).Optional().WithMessage("Year must be an integer of at least 1900"),
	validate.Body(FieldExamType).OneOf(examTypes...).Optional().WithMessage("Exam type must be midterm, final, quiz or other"),
	validate.Body(FieldTags).Array().Optional().WithMessage("Tags must be an array of strings"),
}

// Resource describes old questions to the content framework.
var Resource = content.Resource[*OldQuestion]{
	Name:       "old_question",
	Table:      schema.OldQuestion,
	Collection: "old_questions",
	Rules:      Rules,
	Sortable: listing.Sortable{
		Fields:  []string{content.FieldCreatedAt, content.FieldUpdatedAt, FieldTitle, FieldSubject, FieldYear},
		Default: content.FieldCreatedAt,
	},
	FilterRules: []validate.Rule{
		validate.Query(ParamYear).Integer(MinYear).Optional().WithMessage("Year must be an integer of at least 1900"),
		validate.Query(ParamExamType).OneOf(examTypes...).Optional().WithMessage("Exam type must be midterm, final, quiz or other"),
	},
	Filter:    filter,
	New:       func() *OldQuestion { return &OldQuestion{} },
	Clone:     (*OldQuestion).clone,
	Attr:      (*OldQuestion).attr,
	Columns:   (*OldQuestion).columns,
	Normalize: (*OldQuestion).normalize,
}

func filter(values url.Values) content.Filter {
	var f content.Filter
	if q := values.Get(ParamSearch); q != "" {
		f = f.Search(q, FieldTitle, FieldQuestion, FieldAnswer)
	}
	if subject := values.Get(ParamSubject); subject != "" {
		f = f.Eq(FieldSubject, subject)
	}
	if year := convert.ToInt(values.Get(ParamYear)); year != 0 {
		f = f.Eq(FieldYear, year)
	}
	if examType := values.Get(ParamExamType); examType != "" {
		f = f.Eq(FieldExamType, examType)
	}
	if tag := values.Get(ParamTag); tag != "" {
		f = f.Has(FieldTags, tag)
	}
	return f
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package question defines past exam questions with their answers.
package question

import (
	"slices"

	"github.com/taibuivan/studyhub/internal/core/content"
)

// ExamType classifies the exam a question was taken from.
type ExamType string

const (
	ExamMidterm ExamType = "midterm"
	ExamFinal   ExamType = "final"
	ExamQuiz    ExamType = "quiz"
	ExamOther   ExamType = "other"
)

// MinYear is the earliest accepted exam year.
const MinYear = 1900

// OldQuestion is a question from a past exam.
type OldQuestion struct {
	content.Meta `bson:",inline"`

	Title    string   `json:"title"              bson:"title"`
	Question string   `json:"question"           bson:"question"`
	Answer   string   `json:"answer"             bson:"answer"`
	Subject  string   `json:"subject"            bson:"subject"`
	Year     int      `json:"year,omitempty"     bson:"year"`
	ExamType ExamType `json:"examType,omitempty" bson:"examType"`
	Tags     []string `json:"tags"               bson:"tags"`
	Slug     string   `json:"slug"               bson:"slug"`
}

// Global field names for validation, sorting and filtering
const (
	FieldTitle    = "title"
	FieldQuestion = "question"
	FieldAnswer   = "answer"
	FieldSubject  = "subject"
	FieldYear     = "year"
	FieldExamType = "examType"
	FieldTags     = "tags"
	FieldSlug     = "slug"
)

func (q *OldQuestion) attr(field string) any {
	switch field {
	case FieldTitle:
		return q.Title
	case FieldQuestion:
		return q.Question
	case FieldAnswer:
		return q.Answer
	case FieldSubject:
		return q.Subject
	case FieldYear:
		return q.Year
	case FieldExamType:
		return string(q.ExamType)
	case FieldTags:
		return q.Tags
	case FieldSlug:
		return q.Slug
	}
	return nil
}

// columns follows [schema.OldQuestion] field order.
func (q *OldQuestion) columns() []any {
	return []any{&q.Title, &q.Question, &q.Answer, &q.Subject, &q.Year, &q.ExamType, &q.Tags, &q.Slug}
}

func (q *OldQuestion) clone() *OldQuestion {
	c := *q
	c.Tags = slices.Clone(q.Tags)
	return &c
}

func (q *OldQuestion) normalize() {
	content.Trim(&q.Title, &q.Question, &q.Answer, &q.Subject)
	q.Tags = content.Tags(q.Tags)
	q.Slug = content.Slug(q.Title)
}

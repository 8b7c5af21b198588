// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package assignment defines coursework with a due date and priority.
package assignment

import (
	"encoding/json"
	"time"

	"github.com/taibuivan/studyhub/internal/core/content"
	"github.com/taibuivan/studyhub/internal/platform/validate"
)

// Priority ranks an assignment.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority applies when a create omits the priority.
const DefaultPriority = PriorityMedium

// Assignment is a piece of coursework.
type Assignment struct {
	content.Meta `bson:",inline"`

	Title       string    `json:"title"       bson:"title"`
	Description string    `json:"description" bson:"description"`
	DueDate     time.Time `json:"dueDate"     bson:"dueDate"`
	Subject     string    `json:"subject"     bson:"subject"`
	Priority    Priority  `json:"priority"    bson:"priority"`
}

// Global field names for validation, sorting and filtering
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDueDate     = "dueDate"
	FieldSubject     = "subject"
	FieldPriority    = "priority"
)

// UnmarshalJSON accepts every ISO-8601 form the due date rule accepts,
// not only RFC 3339.
func (a *Assignment) UnmarshalJSON(data []byte) error {
	type plain Assignment
	aux := struct {
		*plain
		DueDate *string `json:"dueDate"`
	}{plain: (*plain)(a)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.DueDate != nil {
		due, err := validate.ParseISODate(*aux.DueDate)
		if err != nil {
			return err
		}
		a.DueDate = due.UTC()
	}
	return nil
}

func (a *Assignment) attr(field string) any {
	switch field {
	case FieldTitle:
		return a.Title
	case FieldDescription:
		return a.Description
	case FieldDueDate:
		return a.DueDate
	case FieldSubject:
		return a.Subject
	case FieldPriority:
		return string(a.Priority)
	}
	return nil
}

// columns follows [schema.Assignment] field order.
func (a *Assignment) columns() []any {
	return []any{&a.Title, &a.Description, &a.DueDate, &a.Subject, &a.Priority}
}

func (a *Assignment) clone() *Assignment {
	c := *a
	return &c
}

func (a *Assignment) normalize() {
	content.Trim(&a.Title, &a.Description, &a.Subject)
	if a.Priority == "" {
		a.Priority = DefaultPriority
	}
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides declarative field rules and the collector that
// turns their violations into a single [apperr.AppError].
//
// # Architecture
//
// Rules are declared once per resource (see [Table]) and evaluated by the
// request pipeline before a handler runs. Every rule is evaluated, each rule
// reports at most one violation, and violations keep declaration order.
package validate

import (
	"github.com/taibuivan/studyhub/internal/platform/apperr"
)

// ErrInvalidJSON is returned when the request body is not a JSON object.
var ErrInvalidJSON = apperr.InvalidInput(apperr.FieldError{Field: "body", Message: "Invalid JSON payload"})

// Validator accumulates violations from several sources in order.
//
// The zero value is ready to use. It is not safe for concurrent use.
type Validator struct {
	errs []apperr.FieldError
}

// Custom records message for field when failed is true.
//
//	v.Custom("year", year < 1900, "Year must be 1900 or later")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
	}
	return v
}

// Merge appends violations collected elsewhere, such as by [Check].
func (v *Validator) Merge(errs []apperr.FieldError) *Validator {
	v.errs = append(v.errs, errs...)
	return v
}

// Err returns an [apperr.KindInvalidInput] error carrying every violation,
// or nil when there are none.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.InvalidInput(append([]apperr.FieldError(nil), v.errs...)...)
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"encoding/json"
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/studyhub/internal/platform/apperr"
)

// DefaultMessage is reported by a rule declared without a message.
const DefaultMessage = "Invalid value"

// UnknownFieldMessage is reported for a body key that differs from a governed
// field only in letter case.
const UnknownFieldMessage = "Unknown field"

// Location names the part of the request a rule reads from.
type Location int

const (
	InBody Location = iota
	InQuery
	InPath
)

// Input is the request material rules are checked against.
//
// Body values carry their JSON types (numbers decoded as [json.Number]).
// Query and path values are always strings.
type Input struct {
	Body  map[string]any
	Query url.Values
	Path  func(name string) string
}

// check reports whether a present value satisfies one constraint.
type check func(value any, in Location) bool

// Rule is one declarative field constraint set.
//
// Rules are values: every builder method returns a modified copy, so a rule
// declared once can be specialised per route without aliasing.
type Rule struct {
	Field   string
	In      Location
	Message string

	optional bool
	checks   []check
}

// Body starts a rule on a JSON body field.
func Body(field string) Rule { return Rule{Field: field, In: InBody} }

// Query starts a rule on a query-string parameter.
func Query(field string) Rule { return Rule{Field: field, In: InQuery} }

// Path starts a rule on a route path parameter.
func Path(field string) Rule { return Rule{Field: field, In: InPath} }

// IsOptional reports whether an absent field passes the rule.
func (r Rule) IsOptional() bool { return r.optional }

// Optional lets an absent field pass. A present field is still checked.
func (r Rule) Optional() Rule {
	r.optional = true
	return r
}

// WithMessage sets the message reported when the rule fails.
func (r Rule) WithMessage(message string) Rule {
	r.Message = message
	return r
}

// NotEmpty requires a string that is non-empty after trimming whitespace.
func (r Rule) NotEmpty() Rule {
	return r.with(func(value any, in Location) bool {
		s, ok := value.(string)
		return ok && strings.TrimSpace(s) != ""
	})
}

// MaxLength requires a string of at most n characters after trimming.
func (r Rule) MaxLength(n int) Rule {
	return r.with(func(value any, in Location) bool {
		s, ok := value.(string)
		return ok && utf8.RuneCountInString(strings.TrimSpace(s)) <= n
	})
}

// Integer requires a whole number not below min.
func (r Rule) Integer(min int64) Rule {
	return r.with(func(value any, in Location) bool {
		if _, isText := value.(string); isText && in == InBody {
			return false
		}
		n, ok := asInteger(value)
		return ok && n >= min
	})
}

// Boolean requires a JSON boolean in a body or a boolean literal in a query.
func (r Rule) Boolean() Rule {
	return r.with(func(value any, in Location) bool {
		switch v := value.(type) {
		case bool:
			return true
		case string:
			return in != InBody && fieldChecker.Var(v, "required,boolean") == nil
		}
		return false
	})
}

// Array requires a JSON array whose elements are all strings.
func (r Rule) Array() Rule {
	return r.with(func(value any, in Location) bool {
		items, ok := value.([]any)
		if !ok {
			return false
		}
		for _, item := range items {
			if _, ok := item.(string); !ok {
				return false
			}
		}
		return true
	})
}

// OneOf requires a string equal to one of the allowed values.
func (r Rule) OneOf(allowed ...string) Rule {
	return r.with(func(value any, in Location) bool {
		s, ok := value.(string)
		return ok && slices.Contains(allowed, s)
	})
}

// ISODate requires an ISO-8601 date or date-time string.
func (r Rule) ISODate() Rule {
	return r.with(func(value any, in Location) bool {
		s, ok := value.(string)
		if !ok {
			return false
		}
		_, err := ParseISODate(s)
		return err == nil
	})
}

// Identifier requires a record identifier (24 lowercase hex characters).
func (r Rule) Identifier() Rule {
	return r.with(func(value any, in Location) bool {
		s, ok := value.(string)
		return ok && IsIdentifier(s)
	})
}

func (r Rule) with(c check) Rule {
	r.checks = append(slices.Clip(r.checks), c)
	return r
}

// evaluate returns the rule's violation, if any.
func (r Rule) evaluate(input Input) (apperr.FieldError, bool) {
	value, present := lookup(input, r.In, r.Field)
	if !present {
		if r.optional {
			return apperr.FieldError{}, false
		}
		return r.violation(), true
	}

	for _, c := range r.checks {
		if !c(value, r.In) {
			return r.violation(), true
		}
	}
	return apperr.FieldError{}, false
}

func (r Rule) violation() apperr.FieldError {
	message := r.Message
	if message == "" {
		message = DefaultMessage
	}
	return apperr.FieldError{Field: r.Field, Message: message}
}

// Check evaluates every rule against the input.
//
// The result holds at most one violation per rule, in declaration order.
// An empty result means the input passed.
//
// Body keys that match a governed field only when letter case is ignored are
// reported too. JSON decoding binds them to that field, so a rule checked
// under the exact name would never see them.
func Check(input Input, rules []Rule) []apperr.FieldError {
	var errs []apperr.FieldError
	for _, rule := range rules {
		if violation, failed := rule.evaluate(input); failed {
			errs = append(errs, violation)
		}
	}
	return append(errs, caseVariants(input.Body, Table(rules).Fields())...)
}

// caseVariants reports, in key order, each body key that case-folds to one
// of fields without equalling it.
func caseVariants(body map[string]any, fields []string) []apperr.FieldError {
	if len(body) == 0 || len(fields) == 0 {
		return nil
	}

	var errs []apperr.FieldError
	for _, key := range slices.Sorted(maps.Keys(body)) {
		if slices.Contains(fields, key) {
			continue
		}
		for _, field := range fields {
			if strings.EqualFold(key, field) {
				errs = append(errs, apperr.FieldError{Field: key, Message: UnknownFieldMessage})
				break
			}
		}
	}
	return errs
}

// # Rule Tables

// Table is the full rule set for a resource's body fields.
type Table []Rule

// Create returns the rules as declared, so required fields must be present.
func (t Table) Create() []Rule {
	return slices.Clone(t)
}

// Update returns the rules with every field optional, for partial updates.
func (t Table) Update() []Rule {
	rules := make([]Rule, len(t))
	for i, rule := range t {
		rules[i] = rule.Optional()
	}
	return rules
}

// Fields lists the body fields the table governs.
func (t Table) Fields() []string {
	fields := make([]string, 0, len(t))
	for _, rule := range t {
		if rule.In == InBody {
			fields = append(fields, rule.Field)
		}
	}
	return fields
}

// # Value Helpers

var fieldChecker = validator.New()

// IsIdentifier reports whether s is a record identifier.
func IsIdentifier(s string) bool {
	return fieldChecker.Var(s, "required,mongodb") == nil
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseISODate parses the ISO-8601 forms accepted for date fields.
// Values without a zone are read as UTC.
func ParseISODate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, strings.TrimSpace(s))
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func lookup(input Input, in Location, field string) (any, bool) {
	switch in {
	case InBody:
		value, ok := input.Body[field]
		return value, ok
	case InQuery:
		if !input.Query.Has(field) {
			return nil, false
		}
		return input.Query.Get(field), true
	case InPath:
		if input.Path == nil {
			return nil, false
		}
		value := input.Path(field)
		return value, value != ""
	}
	return nil, false
}

func asInteger(value any) (int64, bool) {
	switch v := value.(type) {
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case float64:
		n := int64(v)
		return n, float64(n) == v
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	}
	return 0, false
}

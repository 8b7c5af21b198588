// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taibuivan/studyhub/internal/platform/database/schema"
	"github.com/taibuivan/studyhub/internal/platform/listing"
)

// Op is a filter comparison.
type Op int

const (
	// OpEq matches an attribute equal to the value.
	OpEq Op = iota
	// OpSearch matches a case-insensitive substring in any of the fields.
	OpSearch
	// OpHas matches a string-array attribute containing the value.
	OpHas
	// OpGTE matches an attribute at or after the value.
	OpGTE
	// OpLTE matches an attribute at or before the value.
	OpLTE
)

// Condition is one filter term. Fields has exactly one entry except for [OpSearch].
type Condition struct {
	Op     Op
	Fields []string
	Value  any
}

// Filter is a conjunction of conditions built from validated query parameters.
type Filter []Condition

// Eq appends an equality condition.
func (f Filter) Eq(field string, value any) Filter {
	return append(f, Condition{Op: OpEq, Fields: []string{field}, Value: value})
}

// Search appends a substring condition over several text fields.
func (f Filter) Search(text string, fields ...string) Filter {
	return append(f, Condition{Op: OpSearch, Fields: fields, Value: text})
}

// Has appends an array membership condition.
func (f Filter) Has(field, value string) Filter {
	return append(f, Condition{Op: OpHas, Fields: []string{field}, Value: value})
}

// GTE appends a lower bound.
func (f Filter) GTE(field string, value any) Filter {
	return append(f, Condition{Op: OpGTE, Fields: []string{field}, Value: value})
}

// LTE appends an upper bound.
func (f Filter) LTE(field string, value any) Filter {
	return append(f, Condition{Op: OpLTE, Fields: []string{field}, Value: value})
}

// # In-Memory Evaluation

// Match reports whether a record satisfies every condition.
func (f Filter) Match(attr func(field string) any) bool {
	for _, c := range f {
		if !c.match(attr) {
			return false
		}
	}
	return true
}

func (c Condition) match(attr func(field string) any) bool {
	switch c.Op {
	case OpEq:
		return listing.CompareValues(attr(c.Fields[0]), c.Value) == 0 && sameKind(attr(c.Fields[0]), c.Value)
	case OpSearch:
		needle := strings.ToLower(fmt.Sprint(c.Value))
		for _, field := range c.Fields {
			if s, ok := attr(field).(string); ok && strings.Contains(strings.ToLower(s), needle) {
				return true
			}
		}
		return false
	case OpHas:
		items, _ := attr(c.Fields[0]).([]string)
		return slices.Contains(items, fmt.Sprint(c.Value))
	case OpGTE:
		return sameKind(attr(c.Fields[0]), c.Value) && listing.CompareValues(attr(c.Fields[0]), c.Value) >= 0
	case OpLTE:
		return sameKind(attr(c.Fields[0]), c.Value) && listing.CompareValues(attr(c.Fields[0]), c.Value) <= 0
	}
	return false
}

func sameKind(a, b any) bool {
	return a != nil && b != nil && fmt.Sprintf("%T", a) == fmt.Sprintf("%T", b)
}

// # SQL Rendering

// likeEscaper escapes LIKE wildcards using PostgreSQL's default escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SQL renders the filter as a WHERE clause with positional arguments
// starting at $1. Unknown fields are a programming error.
func (f Filter) SQL(table schema.ContentTable) (string, []any, error) {
	if len(f) == 0 {
		return "", nil, nil
	}

	var (
		terms []string
		args  []any
	)
	placeholder := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	for _, c := range f {
		columns := make([]string, 0, len(c.Fields))
		for _, field := range c.Fields {
			column, ok := table.Column(field)
			if !ok {
				return "", nil, fmt.Errorf("content: filter field %q not in %s", field, table.Table)
			}
			columns = append(columns, column)
		}

		switch c.Op {
		case OpEq:
			terms = append(terms, fmt.Sprintf("%s = %s", columns[0], placeholder(c.Value)))
		case OpSearch:
			arg := placeholder("%" + likeEscaper.Replace(fmt.Sprint(c.Value)) + "%")
			ors := make([]string, 0, len(columns))
			for _, column := range columns {
				ors = append(ors, fmt.Sprintf("%s ILIKE %s", column, arg))
			}
			terms = append(terms, "("+strings.Join(ors, " OR ")+")")
		case OpHas:
			terms = append(terms, fmt.Sprintf("%s = ANY(%s)", placeholder(c.Value), columns[0]))
		case OpGTE:
			terms = append(terms, fmt.Sprintf("%s >= %s", columns[0], placeholder(c.Value)))
		case OpLTE:
			terms = append(terms, fmt.Sprintf("%s <= %s", columns[0], placeholder(c.Value)))
		}
	}

	return " WHERE " + strings.Join(terms, " AND "), args, nil
}

// # Document Rendering

// BSON renders the filter as a MongoDB query document.
func (f Filter) BSON() bson.M {
	if len(f) == 0 {
		return bson.M{}
	}

	terms := make(bson.A, 0, len(f))
	for _, c := range f {
		switch c.Op {
		case OpEq, OpHas:
			terms = append(terms, bson.M{documentField(c.Fields[0]): c.Value})
		case OpSearch:
			pattern := primitive.Regex{Pattern: regexp.QuoteMeta(fmt.Sprint(c.Value)), Options: "i"}
			ors := make(bson.A, 0, len(c.Fields))
			for _, field := range c.Fields {
				ors = append(ors, bson.M{documentField(field): pattern})
			}
			terms = append(terms, bson.M{"$or": ors})
		case OpGTE:
			terms = append(terms, bson.M{documentField(c.Fields[0]): bson.M{"$gte": c.Value}})
		case OpLTE:
			terms = append(terms, bson.M{documentField(c.Fields[0]): bson.M{"$lte": c.Value}})
		}
	}
	return bson.M{"$and": terms}
}

// documentField maps a JSON field name to its document key.
func documentField(field string) string {
	if field == FieldID {
		return "_id"
	}
	return field
}

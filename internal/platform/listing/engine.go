// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/taibuivan/studyhub/internal/platform/apperr"
	"github.com/taibuivan/studyhub/pkg/pagination"
	"github.com/taibuivan/studyhub/pkg/slice"
)

// Source yields the full unfiltered record set of a resource.
type Source[T any] func(ctx context.Context) ([]T, error)

// Predicate selects records matching a resource filter. Nil selects all.
type Predicate[T any] func(item T) bool

// Keys exposes the attributes the engine orders by.
type Keys[T any] struct {
	// Attr returns the value of a whitelisted sort field.
	Attr func(item T, field string) any
	// CreatedAt is the first tie-break.
	CreatedAt func(item T) time.Time
	// ID is the final tie-break, always ascending.
	ID func(item T) string
}

// List produces one deterministic page.
//
// Records are filtered, counted, stably sorted by the requested field, then
// by creation time in the same direction, then by id ascending, and finally
// windowed. A source failure is reported as [apperr.KindUpstream].
func List[T any](ctx context.Context, source Source[T], predicate Predicate[T], query Query, keys Keys[T]) (pagination.Page[T], error) {
	all, err := source(ctx)
	if err != nil {
		return pagination.Page[T]{}, apperr.Upstream(err)
	}

	var matched []T
	if predicate != nil {
		matched = slice.Filter(all, predicate)
	} else {
		matched = slices.Clone(all)
	}

	slices.SortStableFunc(matched, Comparator(query, keys))

	start, end := query.Window(len(matched))
	return pagination.NewPage(matched[start:end], len(matched), query.Params), nil
}

// Comparator returns the total order the engine sorts by.
func Comparator[T any](query Query, keys Keys[T]) func(a, b T) int {
	direction := 1
	if query.Order == pagination.Desc {
		direction = -1
	}

	return func(a, b T) int {
		if c := CompareValues(keys.Attr(a, query.SortBy), keys.Attr(b, query.SortBy)); c != 0 {
			return c * direction
		}
		if c := keys.CreatedAt(a).Compare(keys.CreatedAt(b)); c != 0 {
			return c * direction
		}
		return cmp.Compare(keys.ID(a), keys.ID(b))
	}
}

// CompareValues orders the attribute types records expose. Nil sorts first
// and values of differing types compare equal.
func CompareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return cmp.Compare(x, y)
		}
	case int:
		if y, ok := b.(int); ok {
			return cmp.Compare(x, y)
		}
	case int64:
		if y, ok := b.(int64); ok {
			return cmp.Compare(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			return cmp.Compare(boolRank(x), boolRank(y))
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case *time.Time:
		if y, ok := b.(*time.Time); ok {
			switch {
			case x == nil && y == nil:
				return 0
			case x == nil:
				return -1
			case y == nil:
				return 1
			}
			return x.Compare(*y)
		}
	}
	return 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

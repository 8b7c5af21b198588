// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package listing implements the shared listing contract: query
// normalization and the filter, sort and window engine.
//
// # Contract
//
// Every listing endpoint accepts page, limit, sortBy and order. The
// normalizer validates all four and reports every violation at once; the
// engine then produces a deterministic page for the resulting [Query].
package listing

import (
	"net/url"
	"slices"

	"github.com/taibuivan/studyhub/internal/platform/apperr"
	"github.com/taibuivan/studyhub/pkg/pagination"
)

// Query parameter names of the listing contract.
const (
	ParamPage   = "page"
	ParamLimit  = "limit"
	ParamSortBy = "sortBy"
	ParamOrder  = "order"
)

// Fields every record carries and that always participate in ordering.
const (
	FieldCreatedAt = "createdAt"
	FieldID        = "id"
)

// Sortable is a resource's sort whitelist.
type Sortable struct {
	Fields  []string
	Default string
}

// Allows reports whether field is on the whitelist.
func (s Sortable) Allows(field string) bool {
	return slices.Contains(s.Fields, field)
}

// Query is a fully normalized listing request. Its fields are always valid.
type Query struct {
	pagination.Params
	SortBy string
	Order  pagination.Order
}

// Normalize validates the listing parameters against the whitelist.
//
// Absent parameters take defaults (page 1, limit 10, the resource default
// sort, descending). Supplied but invalid values are reported, never
// replaced. A valid limit above the maximum is capped.
func Normalize(values url.Values, sortable Sortable) (Query, []apperr.FieldError) {
	query := Query{
		Params: pagination.Params{Page: pagination.DefaultPage, Limit: pagination.DefaultLimit},
		SortBy: sortable.Default,
		Order:  pagination.DefaultOrder,
	}
	if query.SortBy == "" {
		query.SortBy = FieldCreatedAt
	}

	var errs []apperr.FieldError
	reject := func(field, message string) {
		errs = append(errs, apperr.FieldError{Field: field, Message: message})
	}

	if values.Has(ParamPage) {
		page, ok := pagination.ParsePositive(values.Get(ParamPage))
		if ok {
			query.Page = page
		} else {
			reject(ParamPage, "Page must be a positive integer")
		}
	}

	if values.Has(ParamLimit) {
		limit, ok := pagination.ParsePositive(values.Get(ParamLimit))
		if ok {
			query.Limit = pagination.CapLimit(limit)
		} else {
			reject(ParamLimit, "Limit must be a positive integer")
		}
	}

	if values.Has(ParamSortBy) {
		sortBy := values.Get(ParamSortBy)
		if sortable.Allows(sortBy) {
			query.SortBy = sortBy
		} else {
			reject(ParamSortBy, "Invalid sort field")
		}
	}

	if values.Has(ParamOrder) {
		order, ok := pagination.ParseOrder(values.Get(ParamOrder))
		if ok {
			query.Order = order
		} else {
			reject(ParamOrder, "Order must be asc or desc")
		}
	}

	return query, errs
}

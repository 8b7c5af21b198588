// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes the page window and sort direction a listing is computed
// with, and the page object delivered in the API response.
package pagination

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// MaxLimit is the upper bound for items per page. Larger values are capped.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Order is a normalized sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// DefaultOrder applies when a request names no direction.
const DefaultOrder = Desc

// ParseOrder accepts "asc" or "desc" in any letter case.
func ParseOrder(raw string) (Order, bool) {
	switch Order(strings.ToLower(raw)) {
	case Asc:
		return Asc, true
	case Desc:
		return Desc, true
	}
	return "", false
}

// Params holds a validated page number and page size.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the number of items preceding the page. It saturates at
// [math.MaxInt] instead of overflowing for very large page numbers.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Window returns the half-open index range [start, end) of the page within
// a sequence of n items. Pages past the end yield an empty range.
func (p Params) Window(n int) (start, end int) {
	start = p.Offset()
	if start >= n {
		return n, n
	}
	if p.Limit >= n-start {
		return start, n
	}
	return start, start + p.Limit
}

// ParsePositive parses a strictly positive base-10 integer written with ASCII
// digits only. Signs and surrounding whitespace are rejected.
func ParsePositive(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// CapLimit bounds an already validated limit to [MaxLimit].
func CapLimit(limit int) int {
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Page is one window of a listing as it appears on the wire.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NewPage builds a page object, never emitting a null item array.
func NewPage[T any](items []T, total int, params Params) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Page: params.Page, Limit: params.Limit}
}

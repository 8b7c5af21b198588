// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice holds the generic helpers the listing engine and the stores
share on top of the standard [slices] package.
*/
package slice

// Map returns transform applied to every element, in order.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}

// Filter returns the elements the predicate keeps, in order.
//
// The result is a new slice and is never nil, so it encodes as [] in JSON.
func Filter[T any](input []T, predicate func(T) bool) []T {
	result := []T{}
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// FilterMap transforms every element and keeps the results the predicate accepts.
func FilterMap[T any, U any](input []T, transform func(T) U, keep func(U) bool) []U {
	result := make([]U, 0, len(input))
	for _, v := range input {
		if u := transform(v); keep(u) {
			result = append(result, u)
		}
	}
	return result
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/studyhub/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, slice.Map([]int{1, 2}, strconv.Itoa))
	assert.Empty(t, slice.Map(nil, strconv.Itoa))
}

/*
TestFilter verifies order is kept and an empty result is not nil.
*/
func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, []int{2, 4}, slice.Filter([]int{1, 2, 3, 4}, even))

	none := slice.Filter([]int{1, 3}, even)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFilterMap(t *testing.T) {
	got := slice.FilterMap([]string{" a ", "  ", "b"}, strings.TrimSpace, func(s string) bool { return s != "" })
	assert.Equal(t, []string{"a", "b"}, got)
}

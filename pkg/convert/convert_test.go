// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/studyhub/pkg/convert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2024", 2024},
		{" 1999 ", 1999},
		{"", 0},
		{"abc", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, convert.ToInt(tt.in), tt.in)
	}
}

func TestToBool(t *testing.T) {
	assert.True(t, convert.ToBool("true"))
	assert.True(t, convert.ToBool(" TRUE "))
	assert.True(t, convert.ToBool("1"))
	assert.False(t, convert.ToBool("false"))
	assert.False(t, convert.ToBool("yes"))
	assert.False(t, convert.ToBool(""))
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/studyhub/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Linear Algebra", "linear-algebra"},
		{"  Giải tích 1: Đạo hàm  ", "giai-tich-1-dao-ham"},
		{"Café & Crème", "cafe-creme"},
		{"C++ / Go -- notes", "c-go-notes"},
		{"Lập trình hướng đối tượng", "lap-trinh-huong-doi-tuong"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.in))
		})
	}
}

/*
TestFrom_Truncates verifies long titles are cut on a word boundary.
*/
func TestFrom_Truncates(t *testing.T) {
	title := strings.Repeat("chapter ", 40)

	got := slug.From(title)

	assert.LessOrEqual(t, len(got), slug.MaxLength)
	assert.True(t, strings.HasPrefix(got, "chapter-chapter"))
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.True(t, strings.HasSuffix(got, "chapter"))
}

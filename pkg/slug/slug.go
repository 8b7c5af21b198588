// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug derives URL slugs from content titles.
//
// Titles are often Vietnamese ("Giải tích 1: Đạo hàm"), so accents are
// folded to their base letters rather than dropped.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength caps a slug. Longer slugs are cut at the last word boundary.
const MaxLength = 96

// stroked maps letters that carry no combining mark under NFD.
var stroked = strings.NewReplacer("đ", "d", "Đ", "D", "ø", "o", "Ø", "O", "ł", "l", "Ł", "L")

// From converts s into a lowercase ASCII slug of words joined by hyphens.
//
// # Transformation Pipeline
//
//  1. Fold stroked letters, decompose to NFD and drop combining marks.
//  2. Keep ASCII letters and digits; every other run becomes one hyphen.
//  3. Trim hyphens and cap the result at [MaxLength].
func From(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), stroked.Replace(s))
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return truncate(b.String())
}

func truncate(slug string) string {
	if len(slug) <= MaxLength {
		return slug
	}
	cut := slug[:MaxLength]
	if i := strings.LastIndexByte(cut, '-'); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, "-")
}

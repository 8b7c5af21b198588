// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert turns query-string values into typed filter values.

The conversions are lenient. They are meant for parameters a validation
rule has already accepted, where the remaining failure modes (absent or
blank) map naturally to the zero value.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToInt parses a decimal integer, ignoring surrounding whitespace.
// It returns 0 if the string is blank or cannot be parsed.
func ToInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

// ToBool parses the forms [strconv.ParseBool] accepts, ignoring surrounding
// whitespace. Anything else is false.
func ToBool(s string) bool {
	v, _ := strconv.ParseBool(strings.TrimSpace(s))
	return v
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant conversions for query parameters.

Malformed input yields the caller's default rather than an error. Use strconv
directly where a malformed value must be reported.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToIntD converts a string to an int, returning def if it is empty or malformed.
func ToIntD(str string, def int) int {
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}

	return def
}

// ToBoolPtr parses "true"/"false"/"1"/"0". It returns nil when the value is
// empty or malformed, so an absent filter stays absent.
func ToBoolPtr(str string) *bool {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil
	}

	v, err := strconv.ParseBool(str)
	if err != nil {
		return nil
	}
	return &v
}

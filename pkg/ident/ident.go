// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ident normalizes account identity values before they are compared
// or stored.
//
// # Usage
//
// Identity fields (usernames, emails, contact numbers) are unique per account
// kind. Uniqueness is enforced on the stored form, so every value is folded
// here before the lookup and before the insert.
package ident

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// cases.Caser is not safe for concurrent use, so one is built per call.
var foldTag = language.Und

// Fold converts an identity value into its stored form.
//
// # Transformation Pipeline
//
// 1. Trims surrounding whitespace.
// 2. Normalizes to NFC so visually equal strings compare equal.
// 3. Lower-cases with Unicode rules.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	return cases.Lower(foldTag).String(s)
}

// Text trims a free-text field and collapses inner runs of whitespace.
func Text(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// Digits keeps only the ASCII digits, turning "+91 98765-43210" into
// "919876543210".
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// Title capitalizes each word, used for enum-like values such as weekdays.
func Title(s string) string {
	return cases.Title(foldTag).String(Text(s))
}

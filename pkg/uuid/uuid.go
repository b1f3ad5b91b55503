// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides time-ordered identifiers for WasteWise records.

Every primary key is a UUIDv7: sortable by creation time and friendly to
PostgreSQL B-tree indexes. Public reference codes (pickup request and
feedback ids) are derived from the same generator.
*/
package uuid

import (
	"strings"

	"github.com/google/uuid"
)

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// Code returns a short lower-case reference such as "pkp-3f9c0a1b2d4e".
//
// The suffix is the random tail of a UUIDv7, so codes minted in the same
// millisecond still differ.
func Code(prefix string) string {
	raw := strings.ReplaceAll(New(), "-", "")
	return prefix + "-" + raw[len(raw)-12:]
}

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}

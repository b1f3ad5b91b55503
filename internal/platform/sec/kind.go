// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Account Kinds

// Kind names one of the account populations that can hold a session.
//
// It is written into the token audience and into the "role" cookie, so a
// token minted for one kind is never accepted by another kind's middleware.
type Kind string

const (
	// End users requesting pickups and leaving feedback.
	KindUser Kind = "user"

	// Disposal facilities (collection centers) advertising pickup capability.
	KindFacility Kind = "facility"
)

// Valid reports whether k is a known account kind.
func (k Kind) Valid() bool {
	switch k {
	case KindUser, KindFacility:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// Principal is the identity attached to an authenticated request.
type Principal struct {
	Subject string
	Kind    Kind
}

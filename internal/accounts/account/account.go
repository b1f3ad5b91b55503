// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account implements credentials and sessions once for every account kind.

End users and disposal facilities share the same lifecycle: register, log in,
rotate tokens, log out, edit the profile, change the password and delete the
account. The rules live here in [Service] and [Handler]; each kind plugs in an
[Entity] implementation, a [Kind] descriptor, a [Store] and a [Codec].

# Invariants

  - Identity fields are folded (trimmed, lower-cased) before they are
    compared or stored.
  - The password hash changes only when a new plaintext was set.
  - The stored refresh token is the most recently issued one.
  - Neither the hash nor the refresh token leaves the service.
*/
package account

import (
	"context"
	"time"

	"github.com/taibuivan/wastewise/internal/platform/sec"
)

// # Credentials

// Credentials is embedded by every account entity.
type Credentials struct {
	ID           string    `json:"_id"`
	PasswordHash string    `json:"-"`
	RefreshToken *string   `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// password holds a plaintext waiting to be hashed by [Credentials.Seal].
	password *string
}

// Creds exposes the embedded credentials to the generic service.
func (c *Credentials) Creds() *Credentials { return c }

// SetPassword stages a new plaintext password. The hash is recomputed on the
// next [Credentials.Seal].
func (c *Credentials) SetPassword(plain string) {
	c.password = &plain
}

// PendingPassword returns the staged plaintext, if any.
func (c *Credentials) PendingPassword() (string, bool) {
	if c.password == nil {
		return "", false
	}
	return *c.password, true
}

// Seal hashes a staged password and forgets the plaintext. Without a staged
// password the existing hash is left byte-identical.
func (c *Credentials) Seal(hasher PasswordHasher) error {
	if c.password == nil {
		return nil
	}

	hash, err := hasher.Hash(*c.password)
	if err != nil {
		return err
	}

	c.PasswordHash = hash
	c.password = nil
	return nil
}

// Sanitize strips every secret before the record leaves the service.
func (c *Credentials) Sanitize() {
	c.PasswordHash = ""
	c.RefreshToken = nil
	c.password = nil
}

// # Entity Contract

// Entity is implemented by pointer types embedding [Credentials].
type Entity interface {
	Creds() *Credentials

	// Normalize trims text and folds identity fields in place.
	Normalize()

	// Validate enforces the business rules on a normalized record.
	Validate() error

	// Uniques returns the identity fields that must not collide with
	// another account of the same kind.
	Uniques() Lookup

	// Claims returns the email and display name carried by access tokens.
	Claims() (email string, displayName string)
}

// Patch is a partial profile update decoded from a request.
type Patch[E Entity] interface {
	// Empty reports whether no updatable field was provided.
	Empty() bool

	// Apply copies the provided fields onto the account.
	Apply(account E)
}

// # Kind Descriptor

// Kind describes one account population.
type Kind struct {
	// Name is the token audience and the value of the role cookie.
	Name sec.Kind

	// Label names the kind in messages ("User", "Facility").
	Label string

	// PayloadKey holds the account in the login response body.
	PayloadKey string

	// CurrentPath is the route returning the signed-in account.
	CurrentPath string

	RequiredMessage   string
	IdentityMessage   string
	ConflictMessage   string
	MissingMessage    string
	CredentialMessage string
}

// # Change Events

// Event names a change to an account that other modules may react to.
type Event string

const (
	EventRegistered Event = "registered"
	EventUpdated    Event = "updated"
	EventDeleted    Event = "deleted"
)

// Listener is notified after a change is persisted. It must not block.
type Listener func(ctx context.Context, event Event, accountID string)

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package user plugs end-user accounts into the generic account lifecycle.
package user

import (
	"github.com/taibuivan/wastewise/internal/accounts/account"
	"github.com/taibuivan/wastewise/internal/platform/apperr"
	"github.com/taibuivan/wastewise/internal/platform/database/schema"
	"github.com/taibuivan/wastewise/internal/platform/sec"
	"github.com/taibuivan/wastewise/pkg/ident"
)

// Kind describes end-user accounts.
var Kind = account.Kind{
	Name:              sec.KindUser,
	Label:             "User",
	PayloadKey:        "user",
	CurrentPath:       "/current-user",
	RequiredMessage:   "All fields are required",
	IdentityMessage:   "Either username or email is required",
	ConflictMessage:   "User with email or username already exists",
	MissingMessage:    "User does not exist",
	CredentialMessage: "Invalid user credentials",
}

// User is an end user who books pickups and leaves feedback.
type User struct {
	account.Credentials

	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// Normalize implements [account.Entity].
func (u *User) Normalize() {
	u.Username = ident.Fold(u.Username)
	u.Email = ident.Fold(u.Email)
	u.FullName = ident.Text(u.FullName)
}

// Validate implements [account.Entity].
func (u *User) Validate() error {
	if u.Username == "" || u.Email == "" || u.FullName == "" {
		return apperr.ValidationError(Kind.RequiredMessage)
	}
	return nil
}

// Uniques implements [account.Entity].
func (u *User) Uniques() account.Lookup {
	return account.Lookup{
		schema.AccountUser.Username: u.Username,
		schema.AccountUser.Email:    u.Email,
	}
}

// Claims implements [account.Entity].
func (u *User) Claims() (string, string) {
	return u.Email, u.FullName
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"net/http"
	"strings"

	"github.com/taibuivan/wastewise/internal/accounts/account"
	"github.com/taibuivan/wastewise/internal/platform/database/schema"
	requestutil "github.com/taibuivan/wastewise/internal/platform/request"
	"github.com/taibuivan/wastewise/internal/platform/validate"
	"github.com/taibuivan/wastewise/pkg/ident"
	"github.com/taibuivan/wastewise/pkg/pointer"
)

// Username length bounds.
const (
	usernameMinLen = 3
	usernameMaxLen = 30
	fullNameMinLen = 3
)

// Codec decodes user request bodies.
type Codec struct{}

type registrationRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

// DecodeRegistration implements [account.Codec].
func (Codec) DecodeRegistration(writer http.ResponseWriter, request *http.Request) (*User, error) {
	var input registrationRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		return nil, err
	}

	v := &validate.Validator{}
	v.Required("username", input.Username).
		MinLen("username", input.Username, usernameMinLen).
		MaxLen("username", strings.TrimSpace(input.Username), usernameMaxLen).
		Email("email", input.Email).
		Required("fullName", input.FullName).
		MinLen("fullName", input.FullName, fullNameMinLen).
		Password("password", input.Password)
	if err := v.Err(); err != nil {
		return nil, err
	}

	created := &User{
		Username: input.Username,
		Email:    input.Email,
		FullName: input.FullName,
	}
	created.SetPassword(input.Password)
	return created, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DecodeLogin implements [account.Codec]. Either identity field may be used.
func (Codec) DecodeLogin(writer http.ResponseWriter, request *http.Request) (account.Lookup, string, error) {
	var input loginRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		return nil, "", err
	}

	lookup := account.Lookup{
		schema.AccountUser.Username: ident.Fold(input.Username),
		schema.AccountUser.Email:    ident.Fold(input.Email),
	}
	return lookup, input.Password, nil
}

// Patch is a partial profile update. Blank values count as absent.
type Patch struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	FullName *string `json:"fullName"`
}

// Empty implements [account.Patch].
func (p Patch) Empty() bool {
	for _, field := range []*string{p.Username, p.Email, p.FullName} {
		if strings.TrimSpace(pointer.Val(field)) != "" {
			return false
		}
	}
	return true
}

// Apply implements [account.Patch].
func (p Patch) Apply(target *User) {
	set := func(field *string, dst *string) {
		if strings.TrimSpace(pointer.Val(field)) != "" {
			*dst = *field
		}
	}
	set(p.Username, &target.Username)
	set(p.Email, &target.Email)
	set(p.FullName, &target.FullName)
}

// DecodePatch implements [account.Codec].
func (Codec) DecodePatch(writer http.ResponseWriter, request *http.Request) (account.Patch[*User], error) {
	var patch Patch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		return nil, err
	}

	v := &validate.Validator{}
	if username := strings.TrimSpace(pointer.Val(patch.Username)); username != "" {
		v.MinLen("username", username, usernameMinLen).MaxLen("username", username, usernameMaxLen)
	}
	if email := strings.TrimSpace(pointer.Val(patch.Email)); email != "" {
		v.Email("email", email)
	}
	if fullName := strings.TrimSpace(pointer.Val(patch.FullName)); fullName != "" {
		v.MinLen("fullName", fullName, fullNameMinLen)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	return patch, nil
}

var _ account.Codec[*User] = Codec{}

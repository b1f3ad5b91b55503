// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/wastewise/internal/platform/apperr"
	"github.com/taibuivan/wastewise/internal/platform/constants"
	"github.com/taibuivan/wastewise/internal/platform/ctxutil"
	"github.com/taibuivan/wastewise/internal/platform/middleware"
	requestutil "github.com/taibuivan/wastewise/internal/platform/request"
	"github.com/taibuivan/wastewise/internal/platform/respond"
	"github.com/taibuivan/wastewise/internal/platform/validate"
)

// Codec decodes and shape-checks the kind-specific request bodies.
//
// Its rejections are VALIDATION_ERROR responses with per-field details and
// happen before the [Service] runs.
type Codec[E Entity] interface {
	DecodeRegistration(writer http.ResponseWriter, request *http.Request) (E, error)
	DecodeLogin(writer http.ResponseWriter, request *http.Request) (Lookup, string, error)
	DecodePatch(writer http.ResponseWriter, request *http.Request) (Patch[E], error)
}

// RouteExtension mounts extra routes next to the account routes of a kind.
// Protected routes run behind the kind's session middleware.
type RouteExtension struct {
	Public    func(router chi.Router)
	Protected func(router chi.Router)
}

// Handler implements the HTTP layer of the account lifecycle for one kind.
type Handler[E Entity] struct {
	service *Service[E]
	codec   Codec[E]
}

// NewHandler constructs a [Handler].
func NewHandler[E Entity](service *Service[E], codec Codec[E]) *Handler[E] {
	return &Handler[E]{service: service, codec: codec}
}

// Routes returns the kind's router, mounted under /api/v1/users or
// /api/v1/facility.
func (handler *Handler[E]) Routes(extensions ...RouteExtension) chi.Router {
	router := chi.NewRouter()
	kind := handler.service.Kind()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/refresh-token", handler.refresh)

	for _, extension := range extensions {
		if extension.Public != nil {
			extension.Public(router)
		}
	}

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.Session(handler.service))

		protected.Post("/logout", handler.logout)
		protected.Get(kind.CurrentPath, handler.current)
		protected.Patch("/update-account", handler.update)
		protected.Post("/change-password", handler.changePassword)
		protected.Delete("/delete-profile", handler.delete)

		for _, extension := range extensions {
			if extension.Protected != nil {
				extension.Protected(protected)
			}
		}
	})

	return router
}

func (handler *Handler[E]) message(format string) string {
	return fmt.Sprintf(format, handler.service.Kind().Label)
}

// # Public Endpoints

/*
POST /register.

Response:
  - 201: E: The sanitized account
  - 400: ValidationError
  - 409: Conflict: Identity already taken
*/
func (handler *Handler[E]) register(writer http.ResponseWriter, request *http.Request) {
	account, err := handler.codec.DecodeRegistration(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Register(request.Context(), account)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created, handler.message("%s registered successfully"))
}

/*
POST /login.

Description: Sets the AccessToken, RefreshToken and role cookies and returns
both tokens in the body as well.

Response:
  - 200: {<kind>: E, accessToken, refreshToken}
  - 400 / 401 / 404
*/
func (handler *Handler[E]) login(writer http.ResponseWriter, request *http.Request) {
	lookup, password, err := handler.codec.DecodeLogin(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), lookup, password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	kind := handler.service.Kind()
	setSessionCookies(writer, kind, session.AccessToken, session.RefreshToken, true)

	respond.OK(writer, map[string]any{
		kind.PayloadKey: session.Account,
		"accessToken":   session.AccessToken,
		"refreshToken":  session.RefreshToken,
	}, handler.message("%s logged in successfully"))
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

/*
POST /refresh-token.

Description: Reads the RefreshToken cookie, falling back to the
"refreshToken" body field, and rotates the pair.
*/
func (handler *Handler[E]) refresh(writer http.ResponseWriter, request *http.Request) {
	token := requestutil.CookieValue(request, constants.RefreshTokenCookieName)
	if token == "" {
		var input refreshRequest
		if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}
		token = input.RefreshToken
	}

	session, err := handler.service.Refresh(request.Context(), token)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	setSessionCookies(writer, handler.service.Kind(), session.AccessToken, session.RefreshToken, false)

	respond.OK(writer, map[string]string{
		"accessToken":  session.AccessToken,
		"refreshToken": session.RefreshToken,
	}, "Access token refreshed successfully")
}

// # Protected Endpoints

// POST /logout.
func (handler *Handler[E]) logout(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request, handler.service.Kind().Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Logout(request.Context(), principal.Subject); err != nil {
		respond.Error(writer, request, err)
		return
	}

	clearSessionCookies(writer)
	respond.Empty(writer, handler.message("%s logged out"))
}

// GET /current-user or /current-facility. No store lookup: the session
// middleware already resolved the account.
func (handler *Handler[E]) current(writer http.ResponseWriter, request *http.Request) {
	account, ok := ctxutil.GetAccount[E](request.Context())
	if !ok {
		respond.Error(writer, request, apperr.Unauthorized("Unauthorized request"))
		return
	}

	respond.OK(writer, account, handler.message("%s fetched successfully"))
}

/*
PATCH /update-account.

Response:
  - 200: E: The sanitized, updated account
  - 400: No field provided, or a field failed validation
  - 409: The new identity is taken
*/
func (handler *Handler[E]) update(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request, handler.service.Kind().Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	patch, err := handler.codec.DecodePatch(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateProfile(request.Context(), principal.Subject, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated, "Account details updated successfully")
}

type changePasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// POST /change-password.
func (handler *Handler[E]) changePassword(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request, handler.service.Kind().Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input changePasswordRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required("oldPassword", input.OldPassword).
		Password("newPassword", input.NewPassword).
		Required("confirmPassword", input.ConfirmPassword)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.service.ChangePassword(request.Context(), principal.Subject,
		input.OldPassword, input.NewPassword, input.ConfirmPassword)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Empty(writer, "Password changed successfully")
}

// DELETE /delete-profile.
func (handler *Handler[E]) delete(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request, handler.service.Kind().Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), principal.Subject); err != nil {
		respond.Error(writer, request, err)
		return
	}

	clearSessionCookies(writer)
	respond.Empty(writer, handler.message("%s deleted successfully"))
}

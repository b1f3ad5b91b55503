// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"

	"github.com/taibuivan/wastewise/internal/platform/apperr"
	"github.com/taibuivan/wastewise/internal/platform/constants"
	"github.com/taibuivan/wastewise/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/wastewise/internal/platform/request"
	"github.com/taibuivan/wastewise/internal/platform/respond"
	"github.com/taibuivan/wastewise/internal/platform/sec"
)

// SessionResolver turns an access token into the principal and the sanitized
// account it belongs to. Each account kind has its own resolver.
type SessionResolver interface {
	ResolveSession(ctx context.Context, accessToken string) (sec.Principal, any, error)
}

// Session guards a route group with one account kind's access tokens.
//
// # Flow
//  1. Read the AccessToken cookie, else the "Authorization: Bearer" header.
//  2. Reject with 401 "Unauthorized request" if neither is present.
//  3. Resolve the token through [SessionResolver]; its errors are written
//     as they are.
//  4. Attach the principal and the account to the request context.
func Session(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := requestutil.CookieValue(request, constants.AccessTokenCookieName)
			if token == "" {
				token = requestutil.BearerToken(request)
			}

			if token == "" {
				respond.Error(writer, request, apperr.Unauthorized("Unauthorized request"))
				return
			}

			principal, account, err := resolver.ResolveSession(request.Context(), token)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			ctx := ctxutil.WithPrincipal(request.Context(), &principal)
			ctx = ctxutil.WithAccount(ctx, account)
			noteSession(ctx, principal.Subject, principal.Kind.String())

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

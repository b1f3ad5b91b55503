// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/taibuivan/wastewise/internal/platform/constants"
)

// sessionCookie builds a cookie with the flags shared by every account kind.
func sessionCookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     constants.SessionCookiePath,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}

// setSessionCookies writes both tokens, plus the role cookie on login.
func setSessionCookies(writer http.ResponseWriter, kind Kind, accessToken, refreshToken string, withRole bool) {
	http.SetCookie(writer, sessionCookie(constants.AccessTokenCookieName, accessToken))
	http.SetCookie(writer, sessionCookie(constants.RefreshTokenCookieName, refreshToken))
	if withRole {
		http.SetCookie(writer, sessionCookie(constants.RoleCookieName, kind.Name.String()))
	}
}

// clearSessionCookies expires every session cookie on the client.
func clearSessionCookies(writer http.ResponseWriter) {
	for _, name := range []string{
		constants.AccessTokenCookieName,
		constants.RefreshTokenCookieName,
		constants.RoleCookieName,
	} {
		cookie := sessionCookie(name, "")
		cookie.MaxAge = -1
		http.SetCookie(writer, cookie)
	}
}

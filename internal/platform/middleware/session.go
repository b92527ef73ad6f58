// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"

	"github.com/taibuivan/webbooks/internal/platform/constants"
	"github.com/taibuivan/webbooks/internal/platform/ctxutil"
	"github.com/taibuivan/webbooks/internal/platform/session"
	"github.com/taibuivan/webbooks/pkg/uuid"
)

// # Visitor Sessions

/*
Session binds every request to a visitor session.

The session id travels in the [constants.SessionCookieName] cookie. Visitors
without a valid cookie get a fresh UUIDv7 id, and the cookie is (re)issued on
every response so its lifetime slides with the store TTL.

Parameters:
  - store: session.Store
  - secure: bool (sets the Secure cookie attribute)
  - maxAgeSeconds: int (cookie Max-Age)

Returns:
  - func(http.Handler) http.Handler
*/
func Session(store session.Store, secure bool, maxAgeSeconds int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Reuse the visitor's id when it is well formed
			sessionID := ""
			if cookie, err := request.Cookie(constants.SessionCookieName); err == nil {
				if uuid.Valid(cookie.Value) {
					sessionID = cookie.Value
				}
			}

			// 2. Otherwise open a new session
			if sessionID == "" {
				sessionID = uuid.New()
			}

			http.SetCookie(writer, &http.Cookie{
				Name:     constants.SessionCookieName,
				Value:    sessionID,
				Path:     constants.SessionCookiePath,
				MaxAge:   maxAgeSeconds,
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := ctxutil.WithSession(request.Context(), session.NewHandle(sessionID, store))
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

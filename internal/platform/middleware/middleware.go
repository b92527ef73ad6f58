// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware provides the HTTP processing chain of the WebBooks API.

Order on the root router (see api.NewRouter):

	RequestID → StructuredLogger → Timeout → RateLimit → PanicRecovery
	→ Authenticate → CORS → CleanPath

Session is not global: only the index route counts visits, so it is attached
to that route alone. RequireAuth and RequireRole guard individual groups.

Every rejection is written through respond.Error so clients always receive
the `{error, code}` envelope.
*/
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/taibuivan/webbooks/internal/platform/constants"
)

// RealIP extracts the client address, preferring proxy headers.
func RealIP(request *http.Request) string {
	if ip := request.Header.Get(constants.HeaderXRealIP); ip != "" {
		return ip
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}

// responseRecorder remembers the status and size of what a handler wrote.
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (recorder *responseRecorder) WriteHeader(code int) {
	if recorder.status == 0 {
		recorder.status = code
	}
	recorder.ResponseWriter.WriteHeader(code)
}

func (recorder *responseRecorder) Write(body []byte) (int, error) {
	if recorder.status == 0 {
		recorder.status = http.StatusOK
	}
	n, err := recorder.ResponseWriter.Write(body)
	recorder.bytes += n
	return n, err
}

// Status returns the written status; 200 when the handler wrote nothing.
func (recorder *responseRecorder) Status() int {
	if recorder.status == 0 {
		return http.StatusOK
	}
	return recorder.status
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (recorder *responseRecorder) Unwrap() http.ResponseWriter {
	return recorder.ResponseWriter
}

// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/taibuivan/webbooks/internal/platform/apperr"
	"github.com/taibuivan/webbooks/internal/platform/ctxkey"
	"github.com/taibuivan/webbooks/internal/platform/respond"
)

// # Reliability & Safety

// PanicRecovery turns a handler panic into a logged 500 response.
//
// The stack goes to the request logger when one is on the context and to
// fallback otherwise. http.ErrAbortHandler is re-panicked so net/http can
// abort the connection as it intends.
func PanicRecovery(fallback *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				logger := fallback
				if requestLogger, ok := request.Context().Value(ctxkey.KeyLogger).(*slog.Logger); ok {
					logger = requestLogger
				}
				if logger == nil {
					logger = slog.Default()
				}

				logger.ErrorContext(request.Context(), "panic_recovered",
					slog.Any("error", recovered),
					slog.String("stack", string(debug.Stack())),
				)

				respond.Error(writer, request, apperr.Internal(fmt.Errorf("panic: %v", recovered)))
			}()

			next.ServeHTTP(writer, request)
		})
	}
}

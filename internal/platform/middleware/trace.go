// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/webbooks/internal/platform/constants"
	"github.com/taibuivan/webbooks/internal/platform/ctxutil"
	"github.com/taibuivan/webbooks/pkg/uuid"
)

// maxRequestIDLength caps client supplied correlation ids.
const maxRequestIDLength = 64

// # Request Tracing

// RequestID attaches a correlation id to the request context and response.
//
// A client supplied X-Request-ID is kept when it is short printable ASCII;
// anything else is replaced by a fresh UUIDv7.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requestID := request.Header.Get(constants.HeaderXRequestID)
			if !acceptableRequestID(requestID) {
				requestID = uuid.New()
			}

			writer.Header().Set(constants.HeaderXRequestID, requestID)
			ctx := ctxutil.WithRequestID(request.Context(), requestID)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}

// # Activity Logging

/*
StructuredLogger injects a per-request logger and writes one
`http_request_finished` entry per request.

The entry carries the matched chi route pattern (so /books/7 and /books/9
aggregate as /books/{id}/), the status, the response size and the latency.
4xx responses log at WARN and 5xx at ERROR.
*/
func StructuredLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			startedAt := time.Now()

			requestLogger := logger.With(
				slog.String("request_id", ctxutil.GetRequestID(request.Context())),
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
				slog.String("ip", RealIP(request)),
			)

			ctx := ctxutil.WithLogger(request.Context(), requestLogger)
			recorder := &responseRecorder{ResponseWriter: writer}

			next.ServeHTTP(recorder, request.WithContext(ctx))

			attributes := []any{
				slog.Int("status", recorder.Status()),
				slog.Int("bytes", recorder.bytes),
				slog.Int64("latency_ms", time.Since(startedAt).Milliseconds()),
			}

			if routeContext := chi.RouteContext(ctx); routeContext != nil {
				if pattern := routeContext.RoutePattern(); pattern != "" {
					attributes = append(attributes, slog.String("route", pattern))
				}
			}

			requestLogger.Log(ctx, levelFor(recorder.Status()), "http_request_finished", attributes...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

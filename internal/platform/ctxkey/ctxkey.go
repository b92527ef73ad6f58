// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines the context keys shared by middleware, respond and
// ctxutil. Values are only read and written through ctxutil; respond reads
// the logger and request id directly to avoid an import cycle.
package ctxkey

type key int

const (
	// KeyRequestID holds the X-Request-ID correlation value.
	KeyRequestID key = iota

	// KeyUser holds the verified [sec.AuthClaims] of the caller.
	KeyUser

	// KeyLogger holds the per-request [*log/slog.Logger].
	KeyLogger

	// KeySession holds the visitor's [session.Handle].
	KeySession
)

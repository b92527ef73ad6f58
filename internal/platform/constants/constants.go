// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuers and cookie configuration.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "webbooks-api"
	AppVersion = "0.1.0-dev"
)

// # Routing

const (
	// APIPrefix is the mount point of every versioned endpoint.
	APIPrefix = "/api/v1"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "webbooks.local"

	// AccessTokenTTL is how long an issued access token stays valid.
	AccessTokenTTL = 1 * time.Hour
)

// # Sessions

const (
	// SessionCookieName is the cookie carrying the visitor session id.
	SessionCookieName = "sessionid"

	// SessionCookiePath scopes the session cookie to the whole site.
	SessionCookiePath = "/"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderOrigin        = "Origin"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderLocation      = "Location"
)

// # JSON Field Identifiers

// Keys of the health probe payloads.
const (
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Database Schemas

const (
	SchemaCatalog = "catalog"
	SchemaUsers   = "users"
)

// # Redis Prefixes

const (
	RedisPrefixSession = "session:"
)

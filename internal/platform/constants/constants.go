// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Session: token issuer and cookie names.
  - Headers and Redis key prefixes.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "wastewise-api"
	AppVersion = "0.1.0-dev"
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

	// MaxBodyBytes caps JSON request bodies.
	MaxBodyBytes = 16 << 10
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Session

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "wastewise.app"

	// AccessTokenCookieName carries the access token.
	AccessTokenCookieName = "AccessToken"

	// RefreshTokenCookieName carries the refresh token.
	RefreshTokenCookieName = "RefreshToken"

	// RoleCookieName tells the client which account kind is signed in.
	RoleCookieName = "role"

	// SessionCookiePath scopes every session cookie.
	SessionCookiePath = "/"
)

// # HTTP Headers

const (
	HeaderXRequestID     = "X-Request-ID"
	HeaderOrigin         = "Origin"
	HeaderAuthorization  = "Authorization"
	AuthorizationBearer  = "Bearer"
	HeaderRetryAfter     = "Retry-After"
	HeaderContentType    = "Content-Type"
	ContentTypeJSONUTF8  = "application/json; charset=utf-8"
	CORSAllowAllOrigins  = "*"
	CORSPreflightMaxAge  = "300"
	HeaderVary           = "Vary"
	HeaderAllowedMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	HeaderAllowedHeaders = "Accept, Content-Type, Content-Length, Authorization, X-Request-ID"
)

// # JSON Field Identifiers

const (
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixFacilityDirectory = "facility:directory:"
	RedisKeyFacilityDirectoryGen = "facility:directory:generation"
)

package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the CLI to the backend.
	DefaultUserAgent = "agileboot-cli"

	// UserAgentHeader is the HTTP header name for User-Agent.
	UserAgentHeader = "User-Agent"

	// AuthorizationHeader is the HTTP header carrying the bearer token.
	AuthorizationHeader = "Authorization"

	// RequestIDHeader correlates a request with backend logs.
	RequestIDHeader = "X-Request-Id"

	// bearerPrefix prefixes the token in the Authorization header.
	bearerPrefix = "Bearer "
)

package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/agileboot/agileboot-cli/internal/utils"
)

// HeaderInjector is an http.RoundTripper that sets a header on requests that do not carry it yet.
// Requests are cloned before modification, as required by the http.RoundTripper contract.
type HeaderInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// header is the canonical header name.
	header string
	// value produces the header value. An empty value leaves the request untouched.
	value func() string
}

// NewHeaderInjector wraps next so that header is set to the result of value when missing.
func NewHeaderInjector(next http.RoundTripper, header string, value func() string) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return &HeaderInjector{
		next:   next,
		header: http.CanonicalHeaderKey(header),
		value:  value,
	}
}

// NewUserAgentInjector sets the User-Agent header from userAgentProvider.
func NewUserAgentInjector(next http.RoundTripper, userAgentProvider utils.UserAgentProvider) http.RoundTripper {
	return NewHeaderInjector(next, UserAgentHeader, userAgentProvider.GetUserAgent)
}

// NewAuthorizationInjector sets "Authorization: Bearer <token>" while tokenProvider holds a token.
func NewAuthorizationInjector(next http.RoundTripper, tokenProvider utils.TokenProvider) http.RoundTripper {
	return NewHeaderInjector(next, AuthorizationHeader, func() string {
		token := tokenProvider.GetToken()
		if token == "" {
			return ""
		}

		return bearerPrefix + token
	})
}

// NewRequestIDInjector tags every request with a random X-Request-Id.
func NewRequestIDInjector(next http.RoundTripper) http.RoundTripper {
	return NewHeaderInjector(next, RequestIDHeader, func() string {
		return uuid.NewString()
	})
}

// RoundTrip executes a single HTTP transaction, injecting the header if it is missing.
// It implements the http.RoundTripper interface.
func (t *HeaderInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if req.Header.Get(t.header) != "" {
		return t.next.RoundTrip(req)
	}

	value := t.value()
	if value == "" {
		return t.next.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set(t.header, value)

	return t.next.RoundTrip(clone)
}

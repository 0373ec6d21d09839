package utils

//go:generate $MOCKGEN -source=providers.go -destination=mocks/providers_mock.go

import "sync/atomic"

// UserAgentProvider supplies the User-Agent header value.
type UserAgentProvider interface {
	// GetUserAgent returns a User-Agent string.
	GetUserAgent() string
}

// TokenProvider supplies the bearer token used to authorize backend requests.
type TokenProvider interface {
	// GetToken returns the current token, or an empty string when the user is anonymous.
	GetToken() string
}

// SimpleUserAgentProvider returns a User-Agent fixed at construction time.
type SimpleUserAgentProvider struct {
	userAgent string
}

// NewSimpleUserAgentProvider creates a provider that always returns userAgent.
func NewSimpleUserAgentProvider(userAgent string) UserAgentProvider {
	return &SimpleUserAgentProvider{userAgent: userAgent}
}

// GetUserAgent returns a User-Agent string.
func (p *SimpleUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}

// TokenStore is a TokenProvider whose token can be replaced at runtime, e.g. right after login.
// It is safe for concurrent use.
type TokenStore struct {
	token atomic.Pointer[string]
}

// NewTokenStore creates a store holding the initial token.
func NewTokenStore(token string) *TokenStore {
	s := &TokenStore{}
	s.SetToken(token)

	return s
}

// GetToken returns the stored token.
func (s *TokenStore) GetToken() string {
	if token := s.token.Load(); token != nil {
		return *token
	}

	return ""
}

// SetToken replaces the stored token.
func (s *TokenStore) SetToken(token string) {
	s.token.Store(&token)
}

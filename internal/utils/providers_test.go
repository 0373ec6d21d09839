package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSimpleUserAgentProvider tests that the provider returns the configured value.
func TestSimpleUserAgentProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userAgent string
	}{
		{name: "empty user agent", userAgent: ""},
		{name: "cli user agent", userAgent: "agileboot-cli/0.1.0"},
		{name: "browser-like user agent", userAgent: "Mozilla/5.0 (X11; Linux x86_64)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := NewSimpleUserAgentProvider(tt.userAgent)
			assert.Equal(t, tt.userAgent, provider.GetUserAgent())
		})
	}
}

// TestTokenStore tests token replacement.
func TestTokenStore(t *testing.T) {
	t.Parallel()

	store := NewTokenStore("initial")
	assert.Implements(t, (*TokenProvider)(nil), store)
	assert.Equal(t, "initial", store.GetToken())

	store.SetToken("rotated")
	assert.Equal(t, "rotated", store.GetToken())

	store.SetToken("")
	assert.Empty(t, store.GetToken())
}

// TestTokenStore_ZeroValue tests that an unset store is anonymous.
func TestTokenStore_ZeroValue(t *testing.T) {
	t.Parallel()

	var store TokenStore

	assert.Empty(t, store.GetToken())
}

// TestTokenStore_Concurrent tests concurrent reads and writes.
func TestTokenStore_Concurrent(t *testing.T) {
	t.Parallel()

	store := NewTokenStore("a")

	var wg sync.WaitGroup

	for range 10 {
		wg.Add(2)

		go func() {
			defer wg.Done()

			store.SetToken("b")
		}()

		go func() {
			defer wg.Done()

			_ = store.GetToken()
		}()
	}

	wg.Wait()

	assert.Equal(t, "b", store.GetToken())
}

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/agileboot/agileboot-cli/internal/config"
	"github.com/agileboot/agileboot-cli/internal/logger"
)

// TestNewLogTransport tests defaulting of the dump limit.
func TestNewLogTransport(t *testing.T) {
	t.Parallel()

	rt, ok := NewLogTransport(nil, 0).(*LogTransport)
	require.True(t, ok)
	assert.Equal(t, uint64(config.DefaultMaxLogLength), rt.maxLogLength)
	assert.Equal(t, http.DefaultTransport, rt.next)
}

// TestLogTransport_Truncate tests dump truncation.
func TestLogTransport_Truncate(t *testing.T) {
	t.Parallel()

	rt := &LogTransport{maxLogLength: 4}

	assert.Equal(t, "abc", rt.truncate([]byte("abc")))
	assert.Equal(t, "abcd... [truncated]", rt.truncate([]byte("abcdef")))
}

// TestMask tests that credentials never reach the logs.
func TestMask(t *testing.T) {
	t.Parallel()

	dump := "POST /login HTTP/1.1\r\nAuthorization: Bearer secret.jwt.value\r\n\r\n" +
		`{"username":"admin","password":"p\"ss","captchaCode":"1234","token":"issued.jwt"}`

	masked := string(mask([]byte(dump)))

	assert.NotContains(t, masked, "secret.jwt.value")
	assert.NotContains(t, masked, `p\"ss`)
	assert.Contains(t, masked, "Authorization: Bearer ******")
	assert.Contains(t, masked, `"password":"******"`)
	assert.NotContains(t, masked, "issued.jwt")
	assert.Contains(t, masked, `"token":"******"`)
	assert.Contains(t, masked, `"username":"admin"`)
	assert.Contains(t, masked, `"captchaCode":"1234"`)
}

// TestLogTransport_RoundTrip tests the transport at debug and info levels.
func TestLogTransport_RoundTrip(t *testing.T) {
	// Not parallel: the logger and its level are global.
	originalLevel := logger.Level()
	defer logger.SetLevel(originalLevel)

	originalLogger := logger.Logger()
	defer logger.SetLogger(originalLogger)

	const responseBody = `{"code":0,"data":{"token":"issued.jwt.value"}}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(responseBody))
	}))
	defer server.Close()

	tests := []struct {
		name         string
		level        zapcore.Level
		expectedLogs int
	}{
		{name: "debug level dumps", level: zapcore.DebugLevel, expectedLogs: 1},
		{name: "info level is silent", level: zapcore.InfoLevel, expectedLogs: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			logger.SetLogger(zap.New(core).Sugar())
			logger.SetLevel(tt.level)

			req, err := http.NewRequest(http.MethodPost, server.URL+"/login", //nolint:noctx // Test code.
				strings.NewReader(`{"username":"admin","password":"admin123"}`))
			require.NoError(t, err)
			req.Header.Set(AuthorizationHeader, "Bearer stale.jwt.value")

			resp, err := NewLogTransport(http.DefaultTransport, 0).RoundTrip(req)
			require.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			resp.Body.Close() //nolint:errcheck,gosec // Test cleanup, error is not critical.

			assert.JSONEq(t, responseBody, string(body), "body must stay readable after dumping")

			entries := logs.AllUntimed()
			require.Len(t, entries, tt.expectedLogs)

			for _, entry := range entries {
				assert.NotContains(t, entry.Message, "issued.jwt.value")
				assert.NotContains(t, entry.Message, "stale.jwt.value")
				assert.NotContains(t, entry.Message, "admin123")
				assert.Contains(t, entry.Message, `"token":"******"`)
				assert.Contains(t, entry.Message, `"password":"******"`)
			}
		})
	}
}

// TestLogTransport_RoundTripError tests that errors propagate at debug level.
func TestLogTransport_RoundTripError(t *testing.T) {
	originalLevel := logger.Level()
	defer logger.SetLevel(originalLevel)

	logger.SetLevel(zapcore.DebugLevel)

	req, err := http.NewRequest(http.MethodGet, "http://[::1]:0", http.NoBody) //nolint:noctx // Test code.
	require.NoError(t, err)

	resp, err := NewLogTransport(http.DefaultTransport, 0).RoundTrip(req) //nolint:bodyclose // Body is empty on error.
	require.Error(t, err)
	assert.Nil(t, resp)

	_, err = NewLogTransport(nil, 0).RoundTrip(nil) //nolint:bodyclose // No response on error.
	require.ErrorIs(t, err, ErrNilRequest)
}

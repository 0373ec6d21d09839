package agileboot

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agileboot/agileboot-cli/internal/config"
)

// fakeBackend serves canned responses for the endpoints the client calls.
type fakeBackend struct {
	server      *httptest.Server
	configCalls atomic.Int32
	lastAuth    atomic.Value
	lastLogin   atomic.Value
	routesBody  string
	status      int
}

func newFakeBackend(t *testing.T, options ...func(*fakeBackend)) *fakeBackend {
	t.Helper()

	backend := &fakeBackend{
		status: http.StatusOK,
		routesBody: `{"code":0,"msg":"ok","data":[
			{"name":"sys","path":"/sys","meta":{"title":"System","icon":"setting"},"children":[
				{"path":"/sys/user","meta":{"title":"Users","auths":["system:user:list"]}}
			]},
			{"path":"/dashboard","meta":{"title":"Dashboard","showLink":false}}
		]}`,
	}

	for _, option := range options {
		option(backend)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/getConfig", func(w http.ResponseWriter, _ *http.Request) {
		backend.configCalls.Add(1)
		backend.write(w, `{"code":0,"msg":"ok","data":{"isCaptchaOn":true,"dictionary":{}}}`)
	})
	mux.HandleFunc("GET /api/captchaImage", func(w http.ResponseWriter, _ *http.Request) {
		backend.write(w, `{"code":0,"msg":"ok","data":{"captchaCodeImg":"R0lGODlh","captchaCodeKey":"k-1"}}`)
	})
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		backend.lastLogin.Store(string(body))
		backend.write(w, `{"code":0,"msg":"ok","data":{"token":"new-token","currentUser":{"roleKey":"admin"}}}`)
	})
	mux.HandleFunc("GET /api/getLoginUserInfo", func(w http.ResponseWriter, r *http.Request) {
		backend.lastAuth.Store(r.Header.Get("Authorization"))
		backend.write(w, `{"code":0,"msg":"ok","data":{"currentUser":{"userInfo":{"username":"admin"},"roleKey":"admin"}}}`)
	})
	mux.HandleFunc("GET /api/getRouters", func(w http.ResponseWriter, _ *http.Request) {
		backend.write(w, backend.routesBody)
	})

	backend.server = httptest.NewServer(mux)
	t.Cleanup(backend.server.Close)

	return backend
}

func (b *fakeBackend) write(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(b.status)
	_, _ = io.WriteString(w, body)
}

func newTestClient(t *testing.T, baseURL string, cacheTTL time.Duration) *ClientImpl {
	t.Helper()

	client, err := NewClient(&config.Config{
		BaseURL:              baseURL,
		AuthToken:            "initial-token",
		ParsedRequestTimeout: 5 * time.Second,
		ParsedConfigCacheTTL: cacheTTL,
	})
	require.NoError(t, err)

	impl, ok := client.(*ClientImpl)
	require.True(t, ok)

	return impl
}

// TestNewClient tests client construction.
func TestNewClient(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://localhost:8080/api", 0)

	assert.Equal(t, "http://localhost:8080/api", client.GetBaseURL())
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	assert.Nil(t, client.configCache)
	assert.Equal(t, "initial-token", client.tokens.GetToken())

	_, err := NewClient(&config.Config{BaseURL: "http://[::1"})
	require.Error(t, err)
}

// TestClient_GetConfig tests the system config call and its cache.
func TestClient_GetConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		cacheTTL      time.Duration
		expectedCalls int32
	}{
		{name: "cache disabled", cacheTTL: 0, expectedCalls: 3},
		{name: "cache enabled", cacheTTL: time.Minute, expectedCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backend := newFakeBackend(t)
			client := newTestClient(t, backend.server.URL+"/api", tt.cacheTTL)

			for range 3 {
				resp, err := client.GetConfig(context.Background())
				require.NoError(t, err)
				require.NoError(t, resp.Err())
				require.NotNil(t, resp.Data)
				assert.True(t, resp.Data.IsCaptchaOn)
			}

			assert.Equal(t, tt.expectedCalls, backend.configCalls.Load())
		})
	}
}

// TestClient_GetConfig_CachedCopies tests that changing a returned config does not change the cache.
func TestClient_GetConfig_CachedCopies(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t)
	client := newTestClient(t, backend.server.URL+"/api", time.Minute)

	first, err := client.GetConfig(context.Background())
	require.NoError(t, err)
	require.NotNil(t, first.Data)

	first.Data.IsCaptchaOn = false
	first.Data.Dictionary["sys_user_sex"] = []DictionaryData{{Label: "changed"}}

	second, err := client.GetConfig(context.Background())
	require.NoError(t, err)
	require.NotNil(t, second.Data)

	second.Msg = "changed"

	third, err := client.GetConfig(context.Background())
	require.NoError(t, err)

	assert.True(t, third.Data.IsCaptchaOn)
	assert.Empty(t, third.Data.Dictionary)
	assert.Equal(t, "ok", third.Msg)
	assert.Equal(t, int32(1), backend.configCalls.Load())
}

// TestClient_GetCaptchaCode tests the captcha call.
func TestClient_GetCaptchaCode(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t)
	client := newTestClient(t, backend.server.URL+"/api", 0)

	resp, err := client.GetCaptchaCode(context.Background())
	require.NoError(t, err)
	require.NotNil(t, resp.Data)

	assert.Equal(t, "k-1", resp.Data.CaptchaCodeKey)

	image, err := resp.Data.DecodeImage()
	require.NoError(t, err)
	assert.Equal(t, []byte("GIF89a"), image)
}

// TestClient_LoginByPassword tests that the login body is sent as JSON.
func TestClient_LoginByPassword(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t)
	client := newTestClient(t, backend.server.URL+"/api", 0)

	resp, err := client.LoginByPassword(context.Background(), LoginByPasswordDTO{
		Username:       "admin",
		Password:       "admin123",
		CaptchaCode:    "42",
		CaptchaCodeKey: "k-1",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "new-token", resp.Data.Token)

	var sent map[string]string
	require.NoError(t, json.Unmarshal([]byte(backend.lastLogin.Load().(string)), &sent))
	assert.Equal(t, map[string]string{
		"username":       "admin",
		"password":       "admin123",
		"captchaCode":    "42",
		"captchaCodeKey": "k-1",
	}, sent)
}

// TestClient_SetAuthToken tests that the bearer token follows SetAuthToken.
func TestClient_SetAuthToken(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t)
	client := newTestClient(t, backend.server.URL+"/api", 0)

	_, err := client.GetLoginUserInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer initial-token", backend.lastAuth.Load())

	client.SetAuthToken("new-token")

	resp, err := client.GetLoginUserInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer new-token", backend.lastAuth.Load())
	assert.Equal(t, "admin", resp.Data.CurrentUser.UserInfo.Username)
}

// TestClient_GetAsyncRoutes tests that fetched routes come back annotated.
func TestClient_GetAsyncRoutes(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t)
	client := newTestClient(t, backend.server.URL+"/api", 0)

	resp, err := client.GetAsyncRoutes(context.Background())
	require.NoError(t, err)
	require.NoError(t, resp.Err())
	require.Len(t, resp.Data, 2)

	assert.Equal(t, "sys/sys", resp.Data[0].Meta.ID)
	assert.Equal(t, "setting", resp.Data[0].Meta.Icon)
	require.Len(t, resp.Data[0].Children, 1)
	assert.Equal(t, "/sys/user", resp.Data[0].Children[0].Meta.ID)
	assert.Equal(t, []string{"system:user:list"}, resp.Data[0].Children[0].Meta.Auths)
	assert.Equal(t, "/dashboard", resp.Data[1].Meta.ID)
	require.NotNil(t, resp.Data[1].Meta.ShowLink)
	assert.False(t, *resp.Data[1].Meta.ShowLink)
}

// TestClient_GetAsyncRoutes_WithoutData tests that a response without data passes through unchanged.
func TestClient_GetAsyncRoutes_WithoutData(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, func(b *fakeBackend) {
		b.routesBody = `{"code":401,"msg":"token expired"}`
	})
	client := newTestClient(t, backend.server.URL+"/api", 0)

	resp, err := client.GetAsyncRoutes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &AsyncRoutesResponse{Code: 401, Msg: "token expired"}, resp)
	require.ErrorIs(t, resp.Err(), ErrAPIFailure)
}

// TestClient_TransportErrors tests that transport failures propagate to the caller.
func TestClient_TransportErrors(t *testing.T) {
	t.Parallel()

	t.Run("unexpected HTTP status", func(t *testing.T) {
		t.Parallel()

		backend := newFakeBackend(t, func(b *fakeBackend) {
			b.status = http.StatusBadGateway
		})
		client := newTestClient(t, backend.server.URL+"/api", 0)

		_, err := client.GetAsyncRoutes(context.Background())
		require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("malformed payload", func(t *testing.T) {
		t.Parallel()

		backend := newFakeBackend(t, func(b *fakeBackend) {
			b.routesBody = `{"code":0,"data":[`
		})
		client := newTestClient(t, backend.server.URL+"/api", 0)

		_, err := client.GetAsyncRoutes(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode getRouters response")
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		t.Parallel()

		backend := newFakeBackend(t)
		client := newTestClient(t, backend.server.URL+"/other", 0)

		_, err := client.GetCaptchaCode(context.Background())
		require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		backend := newFakeBackend(t)
		client := newTestClient(t, backend.server.URL+"/api", 0)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.GetConfig(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

package agileboot

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/agileboot/agileboot-cli/internal/config"
	"github.com/agileboot/agileboot-cli/internal/logger"
	http_transport "github.com/agileboot/agileboot-cli/internal/transport/http"
	"github.com/agileboot/agileboot-cli/internal/utils"
	"github.com/agileboot/agileboot-cli/internal/version"
)

// Client defines the interface for interacting with the AgileBoot backend.
type Client interface {
	// GetBaseURL returns the base URL of the backend API.
	GetBaseURL() string
	// SetAuthToken replaces the bearer token sent with subsequent requests.
	SetAuthToken(token string)
	// GetConfig retrieves the system configuration.
	GetConfig(ctx context.Context) (*ResponseData[ConfigDTO], error)
	// GetCaptchaCode retrieves a new captcha image and its key.
	GetCaptchaCode(ctx context.Context) (*ResponseData[CaptchaDTO], error)
	// LoginByPassword logs in with a username, password and, if enabled, a solved captcha.
	LoginByPassword(ctx context.Context, request LoginByPasswordDTO) (*ResponseData[TokenDTO], error)
	// GetLoginUserInfo retrieves the user the current token belongs to.
	GetLoginUserInfo(ctx context.Context) (*ResponseData[TokenDTO], error)
	// GetAsyncRoutes retrieves the dynamic route tree with ids assigned to every node.
	GetAsyncRoutes(ctx context.Context) (*AsyncRoutesResponse, error)
}

// ClientImpl implements the Client interface over HTTP.
type ClientImpl struct {
	// baseURL is the base URL for API requests.
	baseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// tokens holds the bearer token read by the authorization round tripper.
	tokens *utils.TokenStore
	// configCache caches the system configuration; nil when caching is disabled.
	configCache *expirable.LRU[string, *ResponseData[ConfigDTO]]
}

// NewClient creates and returns a new instance of ClientImpl.
// The config must have passed config.ValidateConfig.
func NewClient(cfg *config.Config) (Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = http_transport.DefaultUserAgent + "/" + version.Short()
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	tokens := utils.NewTokenStore(cfg.AuthToken)

	// Outermost first: headers are in place before the request is dumped.
	transport := http_transport.NewAuthorizationInjector(
		http_transport.NewRequestIDInjector(
			http_transport.NewUserAgentInjector(
				http_transport.NewLogTransport(http.DefaultTransport, cfg.ParsedMaxLogLength),
				utils.NewSimpleUserAgentProvider(userAgent))),
		tokens)

	client := &ClientImpl{
		baseURL: baseURL.String(),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		tokens: tokens,
	}

	if cfg.ParsedConfigCacheTTL > 0 {
		client.configCache = expirable.NewLRU[string, *ResponseData[ConfigDTO]](
			configCacheSize, nil, cfg.ParsedConfigCacheTTL)
	}

	return client, nil
}

// GetBaseURL returns the base URL of the backend API.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}

// SetAuthToken replaces the bearer token sent with subsequent requests.
func (c *ClientImpl) SetAuthToken(token string) {
	c.tokens.SetToken(token)
}

// GetConfig retrieves the system configuration.
// Successful responses are cached for the configured TTL; every caller gets its own copy.
func (c *ClientImpl) GetConfig(ctx context.Context) (*ResponseData[ConfigDTO], error) {
	if c.configCache != nil {
		if cached, ok := c.configCache.Get(configCacheKey); ok {
			logger.Debug(ctx, "System config cache hit")

			return cloneConfigResponse(cached), nil
		}
	}

	result, err := request[ResponseData[ConfigDTO]](c, ctx, http.MethodGet, apiConfigURI, nil)
	if err != nil {
		return nil, err
	}

	if c.configCache != nil && result.Code == CodeSuccess {
		c.configCache.Add(configCacheKey, cloneConfigResponse(result))
	}

	return result, nil
}

func cloneConfigResponse(resp *ResponseData[ConfigDTO]) *ResponseData[ConfigDTO] {
	clone := *resp

	if resp.Data != nil {
		data := *resp.Data

		if resp.Data.Dictionary != nil {
			data.Dictionary = make(map[string][]DictionaryData, len(resp.Data.Dictionary))

			for dictionaryType, options := range resp.Data.Dictionary {
				data.Dictionary[dictionaryType] = slices.Clone(options)
			}
		}

		clone.Data = &data
	}

	return &clone
}

// GetCaptchaCode retrieves a new captcha image and its key.
func (c *ClientImpl) GetCaptchaCode(ctx context.Context) (*ResponseData[CaptchaDTO], error) {
	return request[ResponseData[CaptchaDTO]](c, ctx, http.MethodGet, apiCaptchaURI, nil)
}

// LoginByPassword logs in with a username, password and, if enabled, a solved captcha.
func (c *ClientImpl) LoginByPassword(
	ctx context.Context,
	loginRequest LoginByPasswordDTO,
) (*ResponseData[TokenDTO], error) {
	return request[ResponseData[TokenDTO]](c, ctx, http.MethodPost, apiLoginURI, loginRequest)
}

// GetLoginUserInfo retrieves the user the current token belongs to.
func (c *ClientImpl) GetLoginUserInfo(ctx context.Context) (*ResponseData[TokenDTO], error) {
	return request[ResponseData[TokenDTO]](c, ctx, http.MethodGet, apiLoginUserInfoURI, nil)
}

// GetAsyncRoutes retrieves the dynamic route tree with ids assigned to every node.
// A response without data is returned unchanged. There is no retry and no caching.
func (c *ClientImpl) GetAsyncRoutes(ctx context.Context) (*AsyncRoutesResponse, error) {
	result, err := request[AsyncRoutesResponse](c, ctx, http.MethodGet, apiRoutersURI, nil)
	if err != nil {
		return nil, err
	}

	return withUniqueIDs(result), nil
}

// request issues a single call and decodes the JSON body into T.
// A non-nil body is sent as JSON. Transport errors are returned unchanged.
//
//nolint:revive // Go doesn't allow methods to be generic, the receiver is passed explicitly.
func request[T any](c *ClientImpl, ctx context.Context, method, uri string, body any) (*T, error) {
	route, err := url.JoinPath(c.baseURL, uri)
	if err != nil {
		return nil, err
	}

	var reader io.Reader = http.NoBody

	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", uri, marshalErr)
		}

		reader = bytes.NewReader(payload)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, method, route, reader)
	if err != nil {
		return nil, err
	}

	httpRequest.Header.Set("Accept", "application/json")

	if body != nil {
		httpRequest.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var result T
	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", uri, err)
	}

	return &result, nil
}

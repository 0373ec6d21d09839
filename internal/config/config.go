package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/agileboot/agileboot-cli/internal/constants"
	"github.com/agileboot/agileboot-cli/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// BaseURL is the root URL of the backend API, e.g. "http://localhost:8080".
	BaseURL string `mapstructure:"base_url"`
	// AuthToken is the bearer token obtained from the login endpoint.
	AuthToken string `mapstructure:"auth_token"`
	// Username is the default login name offered by "auth login".
	Username string `mapstructure:"username"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// UserAgent overrides the User-Agent header sent to the backend.
	UserAgent string `mapstructure:"user_agent"`
	// RequestTimeout is the per-request timeout (e.g. "30s").
	RequestTimeout string `mapstructure:"request_timeout"`
	// MaxLogLength caps the size of request/response dumps in debug logs (e.g. "64KB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// ConfigCacheTTL is how long the system configuration is cached. "0" disables caching.
	ConfigCacheTTL string `mapstructure:"config_cache_ttl"`
	// CaptchaOutputPath is the directory where captcha images are written.
	CaptchaOutputPath string `mapstructure:"captcha_output_path"`
	// Filename is the configuration file this config was loaded from.
	Filename string `mapstructure:"-"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `mapstructure:"-"`
	// ParsedRequestTimeout is the parsed request timeout.
	ParsedRequestTimeout time.Duration `mapstructure:"-"`
	// ParsedMaxLogLength is the parsed maximum dump size in bytes.
	ParsedMaxLogLength uint64 `mapstructure:"-"`
	// ParsedConfigCacheTTL is the parsed system configuration cache TTL.
	ParsedConfigCacheTTL time.Duration `mapstructure:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".agileboot-cli.yaml"

	// DefaultBaseURL points at a backend started locally with its default settings.
	DefaultBaseURL = "http://localhost:8080"

	// DefaultMaxLogLength is the default maximum size (in bytes) of a logged request or response.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// envPrefix is the prefix of environment variables overriding file values, e.g. AGILEBOOT_AUTH_TOKEN.
	envPrefix = "AGILEBOOT"

	authTokenKey = "auth_token"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyAuthToken indicates that the authentication token is missing.
	ErrEmptyAuthToken = errors.New("authentication token cannot be empty, run 'auth login' first")
	// ErrInvalidBaseURL indicates that the base URL is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("base_url must be an absolute http or https URL")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is not positive.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidConfigCacheTTL indicates that the cache TTL is negative.
	ErrInvalidConfigCacheTTL = errors.New("config_cache_ttl cannot be negative")
)

// LoadConfig loads configuration settings from a YAML file and AGILEBOOT_* environment variables.
// A missing default file is not an error, defaults are used instead.
func LoadConfig(configFilename string) (*Config, error) {
	isDefaultFile := configFilename == ""
	if isDefaultFile {
		configFilename = DefaultConfigFilename
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigFile(configFilename)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if !isDefaultFile || !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}

		logger.Debugf(context.Background(), "Config file %s not found, using defaults", configFilename)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Filename = configFilename

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault(authTokenKey, "")
	v.SetDefault("username", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("user_agent", "")
	v.SetDefault("request_timeout", "30s")
	v.SetDefault("max_log_length", "1MB")
	v.SetDefault("config_cache_ttl", "5m")
	v.SetDefault("captcha_output_path", ".")
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	var err error

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	parsedURL, err := url.Parse(cfg.BaseURL)
	if err != nil || parsedURL.Host == "" || (parsedURL.Scheme != "http" && parsedURL.Scheme != "https") {
		return fmt.Errorf("%w: '%s'", ErrInvalidBaseURL, cfg.BaseURL)
	}

	cfg.AuthToken = strings.TrimSpace(cfg.AuthToken)

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	cfg.ParsedMaxLogLength = DefaultMaxLogLength

	if maxLogLength := strings.TrimSpace(cfg.MaxLogLength); maxLogLength != "" && maxLogLength != "0" {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	cfg.ParsedConfigCacheTTL = 0

	if ttl := strings.TrimSpace(cfg.ConfigCacheTTL); ttl != "" && ttl != "0" {
		cfg.ParsedConfigCacheTTL, err = time.ParseDuration(ttl)
		if err != nil {
			return fmt.Errorf("failed to parse config cache TTL: %w", err)
		}

		if cfg.ParsedConfigCacheTTL < 0 {
			return ErrInvalidConfigCacheTTL
		}
	}

	if strings.TrimSpace(cfg.CaptchaOutputPath) == "" {
		cfg.CaptchaOutputPath = "."
	}

	return nil
}

// RequireAuthToken returns ErrEmptyAuthToken when no token is configured.
func RequireAuthToken(cfg *Config) error {
	if strings.TrimSpace(cfg.AuthToken) == "" {
		return ErrEmptyAuthToken
	}

	return nil
}

// SaveConfig persists the auth token to the configuration file, preserving the original format and key order.
func SaveConfig(cfg *Config) error {
	configFile := cfg.Filename
	if configFile == "" {
		configFile = DefaultConfigFilename
	}

	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg, err)
	}

	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	setValueInNode(&node, authTokenKey, cfg.AuthToken)

	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.SecretFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// handleMissingConfigFile creates a minimal config file when none exists yet.
func handleMissingConfigFile(configFile string, cfg *Config, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	content, err := yaml.Marshal(map[string]string{
		"base_url":   cfg.BaseURL,
		authTokenKey: cfg.AuthToken,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, content, constants.SecretFilePermissions); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// setValueInNode sets key to value in the top-level mapping of a YAML document.
// The key is appended when it is not present yet.
func setValueInNode(node *yaml.Node, key, value string) {
	if node.Kind == 0 {
		node.Kind = yaml.DocumentNode
	}

	if len(node.Content) == 0 {
		node.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}

	mapNode := node.Content[0]
	if mapNode.Kind != yaml.MappingNode {
		return
	}

	// Key-value pairs are stored as alternating nodes.
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value != key {
			continue
		}

		valueNode := mapNode.Content[i+1]
		valueNode.Kind = yaml.ScalarNode
		valueNode.Tag = "!!str"
		valueNode.Value = value

		if valueNode.Style == 0 {
			valueNode.Style = yaml.DoubleQuotedStyle
		}

		return
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: yaml.DoubleQuotedStyle},
	)
}

package http

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"regexp"
	"time"

	"github.com/agileboot/agileboot-cli/internal/config"
	"github.com/agileboot/agileboot-cli/internal/logger"
	"github.com/agileboot/agileboot-cli/internal/utils"
)

// LogTransport is an http.RoundTripper that dumps requests and responses at debug level.
// Bearer tokens, passwords and issued tokens are masked in both dumps.
type LogTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// maxLogLength is the maximum length of logged request/response data.
	maxLogLength uint64
}

// Static error definitions for better error handling.
var (
	// ErrNilRequest indicates that the HTTP request is nil.
	ErrNilRequest = errors.New("request is nil")
)

var (
	//nolint:gochecknoglobals // Immutable, pre-compiled patterns used as constants.
	bearerPattern = regexp.MustCompile(`(?i)(Authorization:\s*Bearer\s+)\S+`)
	//nolint:gochecknoglobals // Immutable, pre-compiled patterns used as constants.
	passwordPattern = regexp.MustCompile(`("password"\s*:\s*)"(?:[^"\\]|\\.)*"`)
	//nolint:gochecknoglobals // Immutable, pre-compiled patterns used as constants.
	tokenPattern = regexp.MustCompile(`("token"\s*:\s*)"(?:[^"\\]|\\.)*"`)
)

const maskedValue = "******"

// NewLogTransport creates and returns a new instance of LogTransport.
// If maxLogLength is 0, it defaults to config.DefaultMaxLogLength.
func NewLogTransport(next http.RoundTripper, maxLogLength uint64) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	if maxLogLength == 0 {
		maxLogLength = config.DefaultMaxLogLength
	}

	return &LogTransport{
		next:         next,
		maxLogLength: maxLogLength,
	}
}

// RoundTrip executes a single HTTP transaction and logs the request and response.
// It implements the http.RoundTripper interface.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	// Skip dumping entirely if the logger is not at debug level.
	if !logger.IsDebugLevel() {
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()
	requestDump := t.dumpRequest(req)
	startTime := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(startTime)

	if err != nil {
		logger.DebugKV(ctx, "Request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"request_id", req.Header.Get(RequestIDHeader),
			"error", err)

		return nil, err
	}

	responseDump := t.dumpResponse(resp)

	logger.Debugf(ctx, "%s %s [%d] %s\nRequest: %s\nResponse: %s",
		req.Method, req.URL.Path, resp.StatusCode, duration, requestDump, responseDump)

	return resp, nil
}

func (t *LogTransport) dumpRequest(req *http.Request) string {
	dump, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		return err.Error()
	}

	return t.truncate(mask(dump))
}

func (t *LogTransport) dumpResponse(resp *http.Response) string {
	// Binary bodies are not dumped.
	contentType := resp.Header.Get("Content-Type")

	dump, err := httputil.DumpResponse(resp, utils.IsTextContentType(contentType))
	if err != nil {
		return err.Error()
	}

	return t.truncate(mask(dump))
}

func (t *LogTransport) truncate(data []byte) string {
	if uint64(len(data)) > t.maxLogLength {
		return string(data[:t.maxLogLength]) + "... [truncated]"
	}

	return string(data)
}

func mask(dump []byte) []byte {
	dump = bearerPattern.ReplaceAll(dump, []byte("${1}"+maskedValue))

	dump = passwordPattern.ReplaceAll(dump, []byte(`${1}"`+maskedValue+`"`))

	return tokenPattern.ReplaceAll(dump, []byte(`${1}"`+maskedValue+`"`))
}

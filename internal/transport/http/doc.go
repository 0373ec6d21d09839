// Package http provides the round-trippers used by the backend client:
// debug logging of requests and responses, and injection of the
// User-Agent, Authorization and X-Request-Id headers.
package http

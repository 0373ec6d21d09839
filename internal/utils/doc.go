// Package utils holds small helpers shared across the CLI:
// header value providers for the HTTP transport, content type checks and file name handling.
package utils

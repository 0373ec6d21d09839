package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSanitizeFilename tests the SanitizeFilename function.
func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: "_"},
		{name: "single dot", input: ".", expected: "_"},
		{name: "clean", input: "captcha-1a2b", expected: "captcha-1a2b"},
		{name: "path separators", input: "a/b\\c", expected: "a_b_c"},
		{name: "reserved characters", input: `k<e>y:"|?*`, expected: "k_e_y_____"},
		{name: "only dots", input: "...", expected: "_"},
		{name: "trailing dot", input: "name.", expected: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{name: "json", contentType: "application/json", expected: true},
		{name: "json utf-8", contentType: "application/json;charset=UTF-8", expected: true},
		{name: "problem json", contentType: "application/problem+json", expected: true},
		{name: "plain text", contentType: "text/plain", expected: true},
		{name: "latin1 text", contentType: "text/html; charset=iso-8859-1", expected: false},
		{name: "image", contentType: "image/png", expected: false},
		{name: "garbage", contentType: ";;", expected: false},
		{name: "empty", contentType: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsTextContentType(tt.contentType))
		})
	}
}

// TestDetectImageExtension tests the DetectImageExtension function.
func TestDetectImageExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{name: "png", data: []byte("\x89PNG\r\n\x1a\n0000"), expected: ".png"},
		{name: "gif", data: []byte("GIF89a000000"), expected: ".gif"},
		{name: "jpeg", data: []byte("\xff\xd8\xff\xe0000000"), expected: ".jpg"},
		{name: "unknown", data: []byte("hello"), expected: ".bin"},
		{name: "empty", data: nil, expected: ".bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, DetectImageExtension(tt.data))
		})
	}
}

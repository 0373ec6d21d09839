package utils

import (
	"mime"
	"net/http"
	"regexp"
	"strings"
)

const (
	// ImageJPEGMimeType is the MIME type for JPEG images.
	ImageJPEGMimeType = "image/jpeg"

	// ImagePNGMimeType is the MIME type for PNG images.
	ImagePNGMimeType = "image/png"

	// ImageGIFMimeType is the MIME type for GIF images.
	ImageGIFMimeType = "image/gif"
)

var (
	// invalidCharsPattern includes ASCII control characters (0-31) and Windows-restricted characters: < > : " / \ | ? *.
	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	invalidCharsPattern = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

	// textContentTypePatterns matches content types whose bodies are safe to dump into logs.
	//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
	textContentTypePatterns = []*regexp.Regexp{
		regexp.MustCompile("^text/.+"),
		regexp.MustCompile("^application/json$"),
		regexp.MustCompile(`^application/[a-z0-9.\-]+\+json$`),
	}

	//nolint:gochecknoglobals // Lookup table used as a constant.
	imageExtensions = map[string]string{
		ImageJPEGMimeType: ".jpg",
		ImagePNGMimeType:  ".png",
		ImageGIFMimeType:  ".gif",
	}
)

// SanitizeFilename replaces characters that are invalid in file names on Windows or Unix-like systems.
// Trailing dots are removed and an empty result, including empty input, becomes "_".
func SanitizeFilename(name string) string {
	result := invalidCharsPattern.ReplaceAllString(name, "_")
	result = strings.TrimRight(result, ".")

	if result == "" {
		result = "_"
	}

	return result
}

// IsTextContentType checks if the given content type represents a text-based format.
// It also checks that the charset, if present, is either "utf-8" or "us-ascii".
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}

// DetectImageExtension sniffs the image type of data and returns the matching file extension.
// Unknown content falls back to ".bin".
func DetectImageExtension(data []byte) string {
	contentType, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	if ext, ok := imageExtensions[contentType]; ok {
		return ext
	}

	return ".bin"
}

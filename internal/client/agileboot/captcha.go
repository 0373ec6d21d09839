package agileboot

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeImage decodes the captcha image.
// Both a bare base64 payload and a "data:<mime>;base64," URI are accepted.
func (c *CaptchaDTO) DecodeImage() ([]byte, error) {
	payload := strings.TrimSpace(c.CaptchaCodeImg)

	if strings.HasPrefix(payload, "data:") {
		header, data, found := strings.Cut(payload, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return nil, ErrInvalidCaptchaImage
		}

		payload = data
	}

	if payload == "" {
		return nil, ErrEmptyCaptchaImage
	}

	image, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCaptchaImage, err)
	}

	return image, nil
}

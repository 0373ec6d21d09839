package agileboot

import "errors"

var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrAPIFailure indicates the backend answered with a non-success envelope code.
	ErrAPIFailure = errors.New("backend returned an error")
	// ErrEmptyResponse indicates that there is no envelope to inspect.
	ErrEmptyResponse = errors.New("empty response")
	// ErrEmptyCaptchaImage indicates that the captcha payload carries no image.
	ErrEmptyCaptchaImage = errors.New("captcha image is empty")
	// ErrInvalidCaptchaImage indicates that the captcha image is not valid base64 data.
	ErrInvalidCaptchaImage = errors.New("captcha image is not valid base64")
	// ErrMalformedToken indicates that the token is not a parsable JWT.
	ErrMalformedToken = errors.New("malformed token")
	// ErrInvalidDateTime indicates a date value in a format the backend is not known to use.
	ErrInvalidDateTime = errors.New("invalid date time")
)

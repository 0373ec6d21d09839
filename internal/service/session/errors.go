package session

import "errors"

var (
	// ErrEmptyToken is returned when the backend accepts the login but sends no token.
	ErrEmptyToken = errors.New("backend returned an empty token")

	// ErrEmptyUsername is returned when no username was given or entered.
	ErrEmptyUsername = errors.New("username is empty")

	// ErrEmptyPassword is returned when no password was entered.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrEmptyCaptchaCode is returned when the captcha is enabled but no code was entered.
	ErrEmptyCaptchaCode = errors.New("captcha code is empty")
)

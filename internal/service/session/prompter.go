package session

//go:generate $MOCKGEN -source=prompter.go -destination=mocks/prompter_mock.go

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// Prompter asks the user for login credentials.
type Prompter interface {
	// AskUsername asks for the login name, proposing defaultValue.
	AskUsername(defaultValue string) (string, error)
	// AskPassword asks for the password without echoing it.
	AskPassword() (string, error)
	// AskCaptchaCode asks for the characters shown in the image at imagePath.
	AskCaptchaCode(imagePath string) (string, error)
}

// SurveyPrompter is the interactive terminal Prompter.
type SurveyPrompter struct{}

// NewSurveyPrompter creates a terminal prompter.
func NewSurveyPrompter() Prompter {
	return &SurveyPrompter{}
}

// AskUsername asks for the login name, proposing defaultValue.
func (p *SurveyPrompter) AskUsername(defaultValue string) (string, error) {
	var username string

	prompt := &survey.Input{
		Message: "Username:",
		Default: defaultValue,
	}

	if err := survey.AskOne(prompt, &username, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}

	return strings.TrimSpace(username), nil
}

// AskPassword asks for the password without echoing it.
func (p *SurveyPrompter) AskPassword() (string, error) {
	var password string

	prompt := &survey.Password{
		Message: "Password:",
	}

	if err := survey.AskOne(prompt, &password, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}

	return password, nil
}

// AskCaptchaCode asks for the characters shown in the image at imagePath.
func (p *SurveyPrompter) AskCaptchaCode(imagePath string) (string, error) {
	var code string

	prompt := &survey.Input{
		Message: "Captcha code:",
		Help:    "Open " + imagePath + " and type the characters or the result shown in the image.",
	}

	if err := survey.AskOne(prompt, &code, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}

	return strings.TrimSpace(code), nil
}

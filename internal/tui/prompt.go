package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/crcs-platform/campusctl/pkg/campus/types"
)

// LoginInput is what the login form collects.
type LoginInput struct {
	Email    string
	Password string
}

// ValidateEmail rejects values that cannot be an email address.
func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("email is required")
	}
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 || !strings.Contains(s[at+1:], ".") {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

// ValidatePassword enforces the minimum the signup service accepts.
func ValidatePassword(s string) error {
	if len(s) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

// PromptLogin collects login credentials interactively.
func PromptLogin() (LoginInput, error) {
	var in LoginInput

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("you@campus.edu").
			Validate(ValidateEmail).
			Value(&in.Email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("password is required")
				}
				return nil
			}).
			Value(&in.Password),
	))

	if err := form.Run(); err != nil {
		return LoginInput{}, fmt.Errorf("prompt failed: %w", err)
	}
	return in, nil
}

// PromptSignup collects the fields for a new account.
func PromptSignup() (types.SignupRequest, error) {
	var req types.SignupRequest
	var confirm string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Placeholder("Ada Lovelace").
			Value(&req.Name),
		huh.NewInput().
			Title("Email").
			Placeholder("you@campus.edu").
			Validate(ValidateEmail).
			Value(&req.Email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(ValidatePassword).
			Value(&req.Password),
		huh.NewInput().
			Title("Confirm password").
			EchoMode(huh.EchoModePassword).
			Value(&confirm),
	))

	if err := form.Run(); err != nil {
		return types.SignupRequest{}, fmt.Errorf("prompt failed: %w", err)
	}
	if req.Password != confirm {
		return types.SignupRequest{}, fmt.Errorf("passwords do not match")
	}
	return req, nil
}

// PromptForConfirmation displays a yes/no confirmation prompt
func PromptForConfirmation(message string, defaultValue bool) (bool, error) {
	confirmed := defaultValue

	confirm := huh.NewConfirm().
		Title(message).
		Value(&confirmed)

	form := huh.NewForm(huh.NewGroup(confirm))

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}

	return confirmed, nil
}

// IsInteractive returns true if stdin is a terminal (not piped)
func IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeSessionExpired ErrorCode = "AUTH-001"
	ErrCodeNotLoggedIn    ErrorCode = "AUTH-002"
	ErrCodeLoginFailed    ErrorCode = "AUTH-003"
	ErrCodeSignupFailed   ErrorCode = "AUTH-004"
	ErrCodeRoleDenied     ErrorCode = "AUTH-005"

	// Network errors (NET-001 to NET-099)
	ErrCodeGatewayUnreachable ErrorCode = "NET-001"
	ErrCodeRequestTimeout     ErrorCode = "NET-002"

	// API errors (API-001 to API-099)
	ErrCodeRequestFailed ErrorCode = "API-001"
	ErrCodeDecodeFailed  ErrorCode = "API-002"
	ErrCodeInvalidArgs   ErrorCode = "API-003"

	// Session storage errors (STORE-001 to STORE-099)
	ErrCodeKeychainRead  ErrorCode = "STORE-001"
	ErrCodeKeychainWrite ErrorCode = "STORE-002"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"
	ErrCodeConfigWrite   ErrorCode = "CONFIG-002"
)

// CampusError represents an enhanced error with code, suggestions, and documentation
type CampusError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *CampusError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *CampusError) Unwrap() error {
	return e.Cause
}

// New creates a new CampusError
func New(code ErrorCode, message string) *CampusError {
	return &CampusError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new CampusError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *CampusError {
	return &CampusError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *CampusError) WithSuggestion(suggestion string) *CampusError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *CampusError) WithSuggestions(suggestions ...string) *CampusError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *CampusError) WithDocs(url string) *CampusError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewSessionExpiredError creates the terminal auth failure error: the stored
// credentials can no longer be used and the local session has been discarded.
func NewSessionExpiredError(cause error) *CampusError {
	return Wrap(ErrCodeSessionExpired, "session expired", cause).
		WithSuggestion("Run 'campusctl auth login' to authenticate again")
}

// NewNotLoggedInError creates an error for commands that need a session
func NewNotLoggedInError() *CampusError {
	return New(ErrCodeNotLoggedIn, "not logged in").
		WithSuggestion("Run 'campusctl auth login' to authenticate").
		WithSuggestion("Run 'campusctl auth signup' to create an account")
}

// NewGatewayUnreachableError creates a connectivity failure error naming the
// configured gateway endpoint
func NewGatewayUnreachableError(gatewayURL string, cause error) *CampusError {
	return Wrap(ErrCodeGatewayUnreachable,
		fmt.Sprintf("cannot reach the API gateway at %s", gatewayURL), cause).
		WithSuggestion("Check that the API gateway is running and reachable").
		WithSuggestion("Verify the configured URL with 'campusctl config get api_url'")
}

// NewRoleDeniedError creates an advisory role gate error. The server remains
// the authority; this fires before a request the current role cannot pass.
func NewRoleDeniedError(action string, needed ...string) *CampusError {
	return New(ErrCodeRoleDenied,
		fmt.Sprintf("%s requires one of the roles: %s", action, strings.Join(needed, ", "))).
		WithSuggestion("Ask an administrator to grant you the required role")
}

// NewKeychainReadError creates a session storage read error
func NewKeychainReadError(path string, cause error) *CampusError {
	return Wrap(ErrCodeKeychainRead, fmt.Sprintf("failed to read session data: %s", path), cause).
		WithSuggestion("Run 'campusctl auth login' to rebuild the local session")
}

// NewKeychainWriteError creates a session storage write error
func NewKeychainWriteError(path string, cause error) *CampusError {
	return Wrap(ErrCodeKeychainWrite, fmt.Sprintf("failed to write session data: %s", path), cause).
		WithSuggestion("Check permissions on the campusctl home directory")
}

// NewConfigInvalidError creates a configuration parsing error
func NewConfigInvalidError(path string, cause error) *CampusError {
	return Wrap(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration file: %s", path), cause).
		WithSuggestion("Check the YAML syntax of the configuration file").
		WithSuggestion("Run 'campusctl config path' to locate the file")
}

package ux

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/crcs-platform/campusctl/internal/errors"
)

// ErrorWithSuggestion wraps an error with helpful recovery suggestions
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\n💡 Suggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap provides access to the underlying error
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// NewErrorWithSuggestion creates a new error with a suggestion
func NewErrorWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// EnhanceError analyzes an error and adds contextual suggestions
func EnhanceError(err error) error {
	if err == nil {
		return nil
	}

	// Coded errors already carry their own suggestions.
	var campusErr *errors.CampusError
	if stderrors.As(err, &campusErr) {
		return err
	}

	errMsg := err.Error()

	// Network errors
	if strings.Contains(errMsg, "connection refused") || strings.Contains(errMsg, "no route to host") {
		return NewErrorWithSuggestion(err,
			"Ensure the API gateway is running, or point campusctl at it with --api-url")
	}

	if strings.Contains(errMsg, "context deadline exceeded") || strings.Contains(errMsg, "Client.Timeout") {
		return NewErrorWithSuggestion(err,
			"The gateway took too long to respond. Raise timeout_seconds with 'campusctl config set timeout_seconds 60'")
	}

	// Auth errors
	if strings.Contains(errMsg, "status 401") || strings.Contains(errMsg, "status 403") {
		return NewErrorWithSuggestion(err,
			"Sign in with 'campusctl auth login', or check your role with 'campusctl auth whoami'")
	}

	// Config errors
	if strings.Contains(errMsg, "config.yaml") {
		return NewErrorWithSuggestion(err,
			"Inspect the file with 'campusctl config path' and 'campusctl config view'")
	}

	// Permission errors
	if strings.Contains(errMsg, "permission denied") {
		return NewErrorWithSuggestion(err,
			"Check file permissions on the campusctl home directory (default ~/.campusctl)")
	}

	return err
}

// RenderError writes an error the way commands report failures: the
// message first, then any suggestions and docs link the error carries.
func RenderError(w io.Writer, err error) {
	if err == nil {
		return
	}

	var campusErr *errors.CampusError
	if !stderrors.As(err, &campusErr) {
		fmt.Fprintf(w, "Error: %v\n", EnhanceError(err))
		return
	}

	fmt.Fprintf(w, "Error [%s]: %s\n", campusErr.Code, campusErr.Message)
	if len(campusErr.Suggestions) > 0 {
		fmt.Fprintln(w)
		for _, s := range campusErr.Suggestions {
			fmt.Fprintf(w, "💡 %s\n", s)
		}
	}
	if campusErr.DocsURL != "" {
		fmt.Fprintf(w, "\nDocs: %s\n", campusErr.DocsURL)
	}
}

package platform

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/crcs-platform/campusctl/internal/errors"
)

// APIError is a non-2xx response from the gateway.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// newAPIError drains the response body and extracts the gateway's error
// message when the body is the structured `{message}` (or `{error}`) shape.
func newAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	resp.Body.Close()

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}

	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &parsed) == nil {
		if parsed.Message != "" {
			apiErr.Message = parsed.Message
		} else {
			apiErr.Message = parsed.Error
		}
	}
	return apiErr
}

// ErrorMessage renders any failure from the pipeline as one human-readable
// string. See ErrorMessageFor.
func (c *Client) ErrorMessage(err error) string {
	return ErrorMessageFor(err, c.baseURL)
}

// ErrorMessageFor derives a display message from an arbitrary failure.
//
// Precedence: the structured message from the gateway's error body, then a
// status line for bodyless API errors, then a connectivity hint naming the
// configured gateway when no response was received at all, then the error's
// own text, then a generic fallback. Pure and total: any input, including
// nil, produces a non-empty string.
func ErrorMessageFor(err error, gatewayURL string) string {
	if err == nil {
		return "Request failed"
	}

	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fmt.Sprintf("Request failed with status %d", apiErr.StatusCode)
	}

	// url.Error from the HTTP client means the request never produced a
	// response: the server is unreachable, not rejecting credentials.
	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		if gatewayURL == "" {
			gatewayURL = "the API gateway"
		}
		return fmt.Sprintf("Cannot reach the API at %s. Ensure the API gateway is running.", gatewayURL)
	}

	var campusErr *errors.CampusError
	if stderrors.As(err, &campusErr) {
		return campusErr.Message
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Request failed"
}

package platform

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crcs-platform/campusctl/internal/errors"
)

func TestNewAPIErrorParsesStructuredBodies(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message field", http.StatusConflict, `{"message":"Booking conflict"}`, "Booking conflict"},
		{"error field", http.StatusBadRequest, `{"error":"Invalid time range"}`, "Invalid time range"},
		{"message wins over error", http.StatusBadRequest, `{"message":"m","error":"e"}`, "m"},
		{"plain text body", http.StatusBadGateway, "upstream timeout", ""},
		{"empty body", http.StatusInternalServerError, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{
				StatusCode: tt.status,
				Body:       io.NopCloser(strings.NewReader(tt.body)),
			}
			apiErr := newAPIError(resp)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.body, apiErr.Body)
		})
	}
}

func TestErrorMessageForIsTotal(t *testing.T) {
	gateway := "http://localhost:6000"

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "Request failed",
		},
		{
			name: "api error with gateway message",
			err:  &APIError{StatusCode: 409, Message: "Booking conflict"},
			want: "Booking conflict",
		},
		{
			name: "api error without message",
			err:  &APIError{StatusCode: 502},
			want: "Request failed with status 502",
		},
		{
			name: "wrapped api error",
			err:  fmt.Errorf("create booking: %w", &APIError{StatusCode: 403, Message: "Forbidden"}),
			want: "Forbidden",
		},
		{
			name: "connectivity failure names the gateway",
			err:  &url.Error{Op: "Post", URL: gateway + "/bookings", Err: stderrors.New("connection refused")},
			want: "Cannot reach the API at http://localhost:6000. Ensure the API gateway is running.",
		},
		{
			name: "coded error uses its message",
			err:  errors.NewNotLoggedInError(),
			want: errors.NewNotLoggedInError().Message,
		},
		{
			name: "opaque error falls back to its own text",
			err:  stderrors.New("something odd"),
			want: "something odd",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ErrorMessageFor(tt.err, gateway)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrorMessageForSessionExpiredSurfacesOriginal401(t *testing.T) {
	// The recovery path wraps the original 401 in a session-expired error;
	// the display message still comes from what the server actually said.
	apiErr := &APIError{StatusCode: 401, Message: "Token expired"}
	err := errors.NewSessionExpiredError(apiErr)

	assert.Equal(t, "Token expired", ErrorMessageFor(err, "http://localhost:6000"))
}

func TestErrorMessageForDistinguishesFailureClasses(t *testing.T) {
	gateway := "http://localhost:6000"
	connectivity := ErrorMessageFor(&url.Error{Op: "Get", URL: gateway, Err: stderrors.New("refused")}, gateway)
	business := ErrorMessageFor(&APIError{StatusCode: 409, Message: "Booking conflict"}, gateway)
	opaque := ErrorMessageFor(stderrors.New("boom"), gateway)

	msgs := map[string]bool{connectivity: true, business: true, opaque: true}
	assert.Len(t, msgs, 3, "each failure class must read differently")
	assert.Contains(t, connectivity, gateway)
}

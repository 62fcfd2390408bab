package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotLoggedIn, "test error message")

	if err.Code != ErrCodeNotLoggedIn {
		t.Errorf("expected code %s, got %s", ErrCodeNotLoggedIn, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeKeychainRead, "failed to read session", cause)

	if err.Code != ErrCodeKeychainRead {
		t.Errorf("expected code %s, got %s", ErrCodeKeychainRead, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	// Test unwrapping
	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *CampusError
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodeRequestFailed, "request failed"),
			wantCode: "API-001",
			wantMsg:  "request failed",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeConfigInvalid, "parse failed", fmt.Errorf("bad yaml")),
			wantCode: "CONFIG-001",
			wantMsg:  "parse failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if !strings.Contains(msg, tt.wantCode) {
				t.Errorf("expected error to contain code %s, got: %s", tt.wantCode, msg)
			}
			if !strings.Contains(msg, tt.wantMsg) {
				t.Errorf("expected error to contain message %s, got: %s", tt.wantMsg, msg)
			}
		})
	}
}

func TestSuggestions(t *testing.T) {
	err := New(ErrCodeRoleDenied, "denied").
		WithSuggestion("first suggestion").
		WithSuggestions("second", "third")

	if len(err.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(err.Suggestions))
	}

	msg := err.Error()
	if !strings.Contains(msg, "Suggestions:") {
		t.Errorf("expected formatted suggestions, got: %s", msg)
	}
}

func TestNewSessionExpiredError(t *testing.T) {
	cause := fmt.Errorf("refresh rejected")
	err := NewSessionExpiredError(cause)

	if err.Code != ErrCodeSessionExpired {
		t.Errorf("expected %s, got %s", ErrCodeSessionExpired, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be unwrappable")
	}
	if !strings.Contains(err.Error(), "campusctl auth login") {
		t.Errorf("expected login suggestion, got: %s", err.Error())
	}
}

func TestNewGatewayUnreachableError(t *testing.T) {
	err := NewGatewayUnreachableError("http://localhost:6000", fmt.Errorf("connection refused"))

	if err.Code != ErrCodeGatewayUnreachable {
		t.Errorf("expected %s, got %s", ErrCodeGatewayUnreachable, err.Code)
	}
	if !strings.Contains(err.Error(), "http://localhost:6000") {
		t.Errorf("expected gateway URL in message, got: %s", err.Error())
	}
}

func TestNewRoleDeniedError(t *testing.T) {
	err := NewRoleDeniedError("approving bookings", "ADMIN", "FACILITY_MANAGER")

	msg := err.Error()
	if !strings.Contains(msg, "ADMIN, FACILITY_MANAGER") {
		t.Errorf("expected role list in message, got: %s", msg)
	}
}

package exitcode

import (
	"fmt"
	"testing"

	"github.com/crcs-platform/campusctl/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, Success},
		{"session expired", errors.NewSessionExpiredError(fmt.Errorf("refresh rejected")), AuthError},
		{"not logged in", errors.NewNotLoggedInError(), AuthError},
		{"gateway unreachable", errors.NewGatewayUnreachableError("http://localhost:6000", fmt.Errorf("refused")), NetworkError},
		{"coded general error", errors.New(errors.ErrCodeConfigInvalid, "bad config"), GeneralError},
		{"wrapped coded error", fmt.Errorf("running command: %w", errors.NewNotLoggedInError()), AuthError},
		{"plain unauthorized", fmt.Errorf("server said unauthorized"), AuthError},
		{"plain connection refused", fmt.Errorf("connection refused"), NetworkError},
		{"plain usage", fmt.Errorf(`required flag "resource" not set`), UsageError},
		{"anything else", fmt.Errorf("boom"), GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.want {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	for _, code := range []int{Success, GeneralError, UsageError, AuthError, NetworkError, Interrupted} {
		if Description(code) == "Unknown error" {
			t.Errorf("expected description for code %d", code)
		}
	}
	if Description(99) != "Unknown error" {
		t.Error("expected Unknown error for unmapped code")
	}
}

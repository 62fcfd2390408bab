package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/crcs-platform/campusctl/internal/errors"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatText,
		Output: NewOutput(&buf),
	})

	logger.Debug("debug message")
	if buf.Len() != 0 {
		t.Errorf("debug message should be filtered at INFO level, got: %s", buf.String())
	}

	logger.Info("info message", "key", "value")
	out := buf.String()
	if !strings.Contains(out, "info message") {
		t.Errorf("expected info message in output, got: %s", out)
	}
	if !strings.Contains(out, "key=value") {
		t.Errorf("expected attribute in output, got: %s", out)
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})

	logger.Warn("token refresh failed", "status", 401)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "token refresh failed" {
		t.Errorf("expected msg field, got: %v", entry)
	}
	if entry["status"] != float64(401) {
		t.Errorf("expected status attribute, got: %v", entry)
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelDebug,
		Format: FormatText,
		Output: NewOutput(&buf),
	})

	err := errors.Wrap(errors.ErrCodeSessionExpired, "session expired", fmt.Errorf("refresh rejected"))
	logger.WithError(err).Warn("discarding session")

	out := buf.String()
	if !strings.Contains(out, "AUTH-001") {
		t.Errorf("expected error_code in output, got: %s", out)
	}
	if !strings.Contains(out, "refresh rejected") {
		t.Errorf("expected cause in output, got: %s", out)
	}

	// Plain errors still log their message.
	buf.Reset()
	logger.WithError(fmt.Errorf("plain failure")).Error("boom")
	if !strings.Contains(buf.String(), "plain failure") {
		t.Errorf("expected plain error in output, got: %s", buf.String())
	}

	// Nil error is a no-op wrapper.
	if logger.WithError(nil) != logger {
		t.Error("WithError(nil) should return the same logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("json") != FormatJSON {
		t.Error("ParseFormat(json) should be FormatJSON")
	}
	if ParseFormat("console") != FormatText {
		t.Error("ParseFormat(console) should be FormatText")
	}
	if ParseFormat("") != FormatText {
		t.Error("ParseFormat default should be FormatText")
	}
}

func TestDefaultLogger(t *testing.T) {
	custom := Default()
	SetDefaultLogger(custom)
	if DefaultLogger() != custom {
		t.Error("DefaultLogger should return the configured logger")
	}
}

package cmd

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crcs-platform/campusctl/internal/errors"
)

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	got := tokenExpiry(signed)
	assert.True(t, got.Equal(exp), "got %v want %v", got, exp)

	assert.True(t, tokenExpiry("").IsZero())
	assert.True(t, tokenExpiry("not-a-jwt").IsZero())
}

func TestAuthStatusNotLoggedIn(t *testing.T) {
	t.Setenv("CAMPUSCTL_HOME", t.TempDir())

	out, err := execute(t, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in.")
	assert.Contains(t, out, "campusctl auth login")
}

func TestAuthLoginRequiresCredentialsWhenNotInteractive(t *testing.T) {
	t.Setenv("CAMPUSCTL_HOME", t.TempDir())

	_, err := execute(t, "auth", "login")
	require.Error(t, err)

	var campusErr *errors.CampusError
	require.True(t, stderrors.As(err, &campusErr))
	assert.Equal(t, errors.ErrCodeInvalidArgs, campusErr.Code)
}

func TestAuthLoginEndToEnd(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CAMPUSCTL_HOME", home)

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"token":"t1","refreshToken":"r1","expiresIn":900,
			"user":{"userId":"u1","email":"ada@campus.edu","name":"Ada","role":"ADMIN"}}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	out, err := execute(t, "auth", "login",
		"--api-url", srv.URL,
		"--email", "ada@campus.edu",
		"--password", "correcthorse")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as Ada (ADMIN)")

	// The session survives on disk for the next invocation.
	access, readErr := os.ReadFile(filepath.Join(home, "access_token"))
	require.NoError(t, readErr)
	assert.Equal(t, "t1", string(access))

	out, err = execute(t, "auth", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "ada@campus.edu")
}

func TestAuthLoginFailureReportsServerMessage(t *testing.T) {
	t.Setenv("CAMPUSCTL_HOME", t.TempDir())

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"Invalid credentials"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := execute(t, "auth", "login",
		"--api-url", srv.URL,
		"--email", "ada@campus.edu",
		"--password", "wrong")
	require.Error(t, err)

	var campusErr *errors.CampusError
	require.True(t, stderrors.As(err, &campusErr))
	assert.Equal(t, errors.ErrCodeLoginFailed, campusErr.Code)
	assert.Equal(t, "Invalid credentials", campusErr.Message)
}

func TestAuthLogoutClearsSessionEvenWhenServerFails(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CAMPUSCTL_HOME", home)

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"token":"t1","refreshToken":"r1",
			"user":{"userId":"u1","email":"ada@campus.edu","name":null,"role":"USER"}}`)
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := execute(t, "auth", "login",
		"--api-url", srv.URL, "--email", "ada@campus.edu", "--password", "pw")
	require.NoError(t, err)

	out, err := execute(t, "auth", "logout", "--api-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out.")

	_, statErr := os.Stat(filepath.Join(home, "access_token"))
	assert.True(t, os.IsNotExist(statErr))
}

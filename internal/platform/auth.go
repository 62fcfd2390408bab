package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/crcs-platform/campusctl/pkg/campus/types"
)

// Login exchanges email and password for a token pair and identity.
func (c *Client) Login(ctx context.Context, email, password string) (*types.AuthResponse, error) {
	var out types.AuthResponse
	body := types.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a new account. The gateway logs the account in as part
// of signup, so the response carries a full token pair.
func (c *Client) Signup(ctx context.Context, req types.SignupRequest) (*types.AuthResponse, error) {
	var out types.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout notifies the gateway that the session is over. Best-effort by
// contract: callers are expected to clear local state regardless.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// Refresh exchanges a refresh token for a new token pair.
//
// This call deliberately bypasses the authenticated pipeline: it is the
// pipeline's own recovery step, and routing it back through send would
// recurse on the very 401 it is trying to repair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*types.AuthResponse, error) {
	body, err := json.Marshal(types.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	var out types.AuthResponse
	if err := parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

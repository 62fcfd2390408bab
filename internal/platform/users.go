package platform

import (
	"context"
	"net/http"
	"net/url"

	"github.com/crcs-platform/campusctl/pkg/campus/types"
)

// GetUserProfile returns a user's profile.
func (c *Client) GetUserProfile(ctx context.Context, userID string) (*types.UserProfile, error) {
	var out types.UserProfile
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// updateProfileResponse is the envelope the user service wraps updates in.
type updateProfileResponse struct {
	Message string            `json:"message"`
	Data    types.UserProfile `json:"data"`
}

// UpdateUserProfile updates profile fields; nil fields are unchanged.
func (c *Client) UpdateUserProfile(ctx context.Context, userID string, req types.UpdateUserProfileRequest) (*types.UserProfile, error) {
	var out updateProfileResponse
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(userID), nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ListUsers returns a page of user profiles.
func (c *Client) ListUsers(ctx context.Context, q types.PageQuery) (*types.Page[types.UserProfile], error) {
	var out types.Page[types.UserProfile]
	if err := c.do(ctx, http.MethodGet, "/users", pageQuery(q), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUserProfile creates a profile record directly (admin path; normal
// accounts are created through signup).
func (c *Client) CreateUserProfile(ctx context.Context, req types.CreateUserProfileRequest) (*types.UserProfile, error) {
	var out types.UserProfile
	if err := c.do(ctx, http.MethodPost, "/users", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeactivateUser marks an account inactive without deleting it.
func (c *Client) DeactivateUser(ctx context.Context, userID string) (*types.MessageResponse, error) {
	var out types.MessageResponse
	path := "/users/" + url.PathEscape(userID) + "/deactivate"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, userID string) (*types.MessageResponse, error) {
	var out types.MessageResponse
	if err := c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

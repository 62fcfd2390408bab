package platform

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/crcs-platform/campusctl/pkg/campus/types"
)

func pageQuery(q types.PageQuery) url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		values.Set("size", strconv.Itoa(q.Size))
	}
	return values
}

// ListResources returns a page of all resources.
func (c *Client) ListResources(ctx context.Context, q types.PageQuery) (*types.Page[types.Resource], error) {
	var out types.Page[types.Resource]
	if err := c.do(ctx, http.MethodGet, "/resources", pageQuery(q), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetResource returns a single resource by ID.
func (c *Client) GetResource(ctx context.Context, id string) (*types.Resource, error) {
	var out types.Resource
	if err := c.do(ctx, http.MethodGet, "/resources/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListResourcesByType returns a page of resources of one type.
func (c *Client) ListResourcesByType(ctx context.Context, t types.ResourceType, q types.PageQuery) (*types.Page[types.Resource], error) {
	var out types.Page[types.Resource]
	path := "/resources/type/" + url.PathEscape(string(t))
	if err := c.do(ctx, http.MethodGet, path, pageQuery(q), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAvailableResources returns a page of currently available resources.
func (c *Client) ListAvailableResources(ctx context.Context, q types.PageQuery) (*types.Page[types.Resource], error) {
	var out types.Page[types.Resource]
	if err := c.do(ctx, http.MethodGet, "/resources/available", pageQuery(q), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListResourcesByOwner returns the resources owned by a user. Not paged.
func (c *Client) ListResourcesByOwner(ctx context.Context, ownerID string) ([]types.Resource, error) {
	var out []types.Resource
	path := "/resources/owner/" + url.PathEscape(ownerID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateResource registers a new bookable resource.
func (c *Client) CreateResource(ctx context.Context, req types.CreateResourceRequest) (*types.Resource, error) {
	var out types.Resource
	if err := c.do(ctx, http.MethodPost, "/resources", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateResource updates mutable fields of a resource.
func (c *Client) UpdateResource(ctx context.Context, id string, req types.UpdateResourceRequest) (*types.Resource, error) {
	var out types.Resource
	if err := c.do(ctx, http.MethodPut, "/resources/"+url.PathEscape(id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateResourceStatus changes a resource's availability status.
// The gateway takes the new status as a query parameter on this endpoint.
func (c *Client) UpdateResourceStatus(ctx context.Context, id string, status types.ResourceStatus) error {
	query := url.Values{"status": []string{string(status)}}
	path := "/resources/" + url.PathEscape(id) + "/status"
	return c.do(ctx, http.MethodPatch, path, query, nil, nil)
}

// DeleteResource removes a resource.
func (c *Client) DeleteResource(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/resources/"+url.PathEscape(id), nil, nil, nil)
}

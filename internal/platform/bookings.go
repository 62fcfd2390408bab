package platform

import (
	"context"
	"net/http"
	"net/url"

	"github.com/crcs-platform/campusctl/pkg/campus/types"
)

// CheckAvailability asks whether a resource is free for a time window.
func (c *Client) CheckAvailability(ctx context.Context, resourceID, startTime, endTime string) (*types.AvailabilityCheck, error) {
	query := url.Values{
		"resourceId": []string{resourceID},
		"startTime":  []string{startTime},
		"endTime":    []string{endTime},
	}
	var out types.AvailabilityCheck
	if err := c.do(ctx, http.MethodGet, "/bookings/availability", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckAvailabilityForBooking is the POST form of the availability check,
// taking a full booking request body.
func (c *Client) CheckAvailabilityForBooking(ctx context.Context, req types.CreateBookingRequest) (*types.AvailabilityCheck, error) {
	var out types.AvailabilityCheck
	if err := c.do(ctx, http.MethodPost, "/bookings/availability", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBooking books a resource. Conflict checks happen server-side; a
// conflicting window comes back as a business error, not a retryable one.
func (c *Client) CreateBooking(ctx context.Context, req types.CreateBookingRequest) (*types.Booking, error) {
	var out types.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBooking returns a single booking by ID.
func (c *Client) GetBooking(ctx context.Context, id string) (*types.Booking, error) {
	var out types.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUserBookings returns a page of a user's bookings.
func (c *Client) ListUserBookings(ctx context.Context, userID string, q types.PageQuery) (*types.Page[types.Booking], error) {
	var out types.Page[types.Booking]
	path := "/bookings/user/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, pageQuery(q), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListResourceBookings returns a page of bookings against a resource.
func (c *Client) ListResourceBookings(ctx context.Context, resourceID string, q types.PageQuery) (*types.Page[types.Booking], error) {
	var out types.Page[types.Booking]
	path := "/bookings/resource/" + url.PathEscape(resourceID)
	if err := c.do(ctx, http.MethodGet, path, pageQuery(q), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBookingStatus moves a booking to an explicit lifecycle state.
func (c *Client) UpdateBookingStatus(ctx context.Context, id string, status types.BookingStatus) (*types.Booking, error) {
	var out types.Booking
	body := map[string]string{"status": string(status)}
	path := "/bookings/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveBooking confirms a pending booking.
func (c *Client) ApproveBooking(ctx context.Context, id string) (*types.Booking, error) {
	var out types.Booking
	path := "/bookings/" + url.PathEscape(id) + "/approve"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelBooking cancels a booking.
func (c *Client) CancelBooking(ctx context.Context, id string) (*types.MessageResponse, error) {
	var out types.MessageResponse
	path := "/bookings/" + url.PathEscape(id) + "/cancel"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crcs-platform/campusctl/pkg/campus/types"
)

func strptr(s string) *string { return &s }

func TestRenderResources(t *testing.T) {
	capacity := 30
	page := &types.Page[types.Resource]{
		Content: []types.Resource{
			{ID: "r1", Name: "Physics Lab", Type: types.ResourceLab, Status: types.ResourceAvailable, Location: strptr("Building C"), Capacity: &capacity},
			{ID: "r2", Name: "Spectrometer", Type: types.ResourceEquipment, Status: types.ResourceMaintenance},
		},
		Page: 0, TotalPages: 1, TotalElements: 2,
	}

	var buf bytes.Buffer
	require.NoError(t, RenderResources(&buf, page))

	out := buf.String()
	assert.Contains(t, out, "Physics Lab")
	assert.Contains(t, out, "Building C")
	assert.Contains(t, out, "30")
	assert.Contains(t, out, "MAINTENANCE")
	assert.NotContains(t, out, "Page 1 of", "single page needs no footer")
}

func TestRenderResourcesEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResources(&buf, &types.Page[types.Resource]{}))
	assert.Contains(t, buf.String(), "No resources found.")
}

func TestRenderResourcesFooterOnMultiplePages(t *testing.T) {
	page := &types.Page[types.Resource]{
		Content:       []types.Resource{{ID: "r1", Name: "Lab", Type: types.ResourceLab, Status: types.ResourceAvailable}},
		Page:          1,
		TotalPages:    3,
		TotalElements: 41,
	}

	var buf bytes.Buffer
	require.NoError(t, RenderResources(&buf, page))
	assert.Contains(t, buf.String(), "Page 2 of 3 (41 total)")
}

func TestRenderBookings(t *testing.T) {
	page := &types.Page[types.Booking]{
		Content: []types.Booking{
			{ID: "b1", ResourceName: "Physics Lab", StartTime: "2026-09-01T10:00:00Z", EndTime: "2026-09-01T11:00:00Z", Status: types.BookingConfirmed},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderBookings(&buf, page))

	out := buf.String()
	assert.Contains(t, out, "b1")
	assert.Contains(t, out, "Physics Lab")
	assert.Contains(t, out, "CONFIRMED")
}

func TestRenderBookingDetail(t *testing.T) {
	b := &types.Booking{
		ID: "b7", ResourceID: "r1", ResourceName: "Physics Lab",
		StartTime: "2026-09-01T10:00:00Z", EndTime: "2026-09-01T11:00:00Z",
		Status: types.BookingPending, Purpose: strptr("Thesis experiment"),
	}

	var buf bytes.Buffer
	require.NoError(t, RenderBookingDetail(&buf, b))

	out := buf.String()
	assert.Contains(t, out, "Booking b7")
	assert.Contains(t, out, "Physics Lab (r1)")
	assert.Contains(t, out, "Thesis experiment")
}

func TestRenderUsers(t *testing.T) {
	page := &types.Page[types.UserProfile]{
		Content: []types.UserProfile{
			{UserID: "u1", Email: "ada@campus.edu", Name: strptr("Ada"), Role: types.RoleAdmin, IsActive: true},
			{UserID: "u2", Email: "bob@campus.edu", Role: types.RoleUser},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderUsers(&buf, page))

	out := buf.String()
	assert.Contains(t, out, "ada@campus.edu")
	assert.Contains(t, out, "ADMIN")
	assert.Contains(t, out, "-", "missing name renders as a dash")
}

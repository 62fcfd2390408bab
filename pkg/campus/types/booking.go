package types

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

// Booking statuses known to the backend.
const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// Booking is a reservation of a resource for a time window.
// Start and end times are ISO 8601 strings as produced by the backend.
type Booking struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	ResourceID   string        `json:"resourceId"`
	ResourceName string        `json:"resourceName"`
	StartTime    string        `json:"startTime"`
	EndTime      string        `json:"endTime"`
	Status       BookingStatus `json:"status"`
	Purpose      *string       `json:"purpose,omitempty"`
	CreatedAt    string        `json:"createdAt,omitempty"`
	UpdatedAt    string        `json:"updatedAt,omitempty"`
}

// CreateBookingRequest is the body for POST /bookings.
type CreateBookingRequest struct {
	ResourceID string `json:"resourceId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Purpose    string `json:"purpose,omitempty"`
}

// AvailabilityCheck is the result of a booking availability query.
type AvailabilityCheck struct {
	Available  bool   `json:"available"`
	ResourceID string `json:"resourceId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Message    string `json:"message"`
}

package types

// ResourceType categorizes a bookable campus resource.
type ResourceType string

// Resource types known to the backend.
const (
	ResourceRoom      ResourceType = "ROOM"
	ResourceLab       ResourceType = "LAB"
	ResourceHall      ResourceType = "HALL"
	ResourceEquipment ResourceType = "EQUIPMENT"
	ResourceCafeteria ResourceType = "CAFETERIA"
	ResourceLibrary   ResourceType = "LIBRARY"
	ResourceParking   ResourceType = "PARKING"
	ResourceSports    ResourceType = "SPORTS"
)

// ResourceTypes lists every known resource type.
var ResourceTypes = []ResourceType{
	ResourceRoom, ResourceLab, ResourceHall, ResourceEquipment,
	ResourceCafeteria, ResourceLibrary, ResourceParking, ResourceSports,
}

// Valid reports whether t is a known resource type.
func (t ResourceType) Valid() bool {
	for _, known := range ResourceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ResourceStatus is the current availability state of a resource.
type ResourceStatus string

// Resource statuses known to the backend.
const (
	ResourceAvailable   ResourceStatus = "AVAILABLE"
	ResourceBooked      ResourceStatus = "BOOKED"
	ResourceMaintenance ResourceStatus = "MAINTENANCE"
	ResourceUnavailable ResourceStatus = "UNAVAILABLE"
)

// Resource is a bookable campus resource.
type Resource struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Type              ResourceType   `json:"type"`
	Description       *string        `json:"description,omitempty"`
	Status            ResourceStatus `json:"status"`
	Location          *string        `json:"location,omitempty"`
	Capacity          *int           `json:"capacity,omitempty"`
	OwnerID           *string        `json:"ownerId,omitempty"`
	ResponsiblePerson *string        `json:"responsiblePerson,omitempty"`
	CreatedAt         string         `json:"createdAt,omitempty"`
	UpdatedAt         string         `json:"updatedAt,omitempty"`
}

// CreateResourceRequest is the body for POST /resources.
type CreateResourceRequest struct {
	Name              string       `json:"name"`
	Type              ResourceType `json:"type"`
	Description       string       `json:"description,omitempty"`
	Location          string       `json:"location,omitempty"`
	Capacity          int          `json:"capacity,omitempty"`
	OwnerID           string       `json:"ownerId,omitempty"`
	ResponsiblePerson string       `json:"responsiblePerson,omitempty"`
}

// UpdateResourceRequest is the body for PUT /resources/{id}.
// Nil fields are left unchanged by the server.
type UpdateResourceRequest struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Location    *string         `json:"location,omitempty"`
	Capacity    *int            `json:"capacity,omitempty"`
	Status      *ResourceStatus `json:"status,omitempty"`
}

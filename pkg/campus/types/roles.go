package types

// Role identifies the authorization role assigned to a user account.
//
// Roles are assigned by the backend and carried inside the access token
// claims. The client uses them only to decide which affordances to show;
// the gateway enforces the actual authorization rules.
type Role string

// Known roles, aligned with the backend enumeration.
const (
	RoleUser            Role = "USER"
	RoleResourceManager Role = "RESOURCE_MANAGER"
	RoleFacilityManager Role = "FACILITY_MANAGER"
	RoleAdmin           Role = "ADMIN"
)

// Roles lists every known role in backend declaration order.
var Roles = []Role{RoleUser, RoleResourceManager, RoleFacilityManager, RoleAdmin}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleResourceManager, RoleFacilityManager, RoleAdmin:
		return true
	}
	return false
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// CanManageResources reports whether the role may create, update, or delete
// resources. Advisory only; the server is the authority.
func CanManageResources(r Role) bool {
	return r == RoleAdmin || r == RoleResourceManager || r == RoleFacilityManager
}

// CanApproveBookings reports whether the role may approve pending bookings.
// Advisory only; the server is the authority.
func CanApproveBookings(r Role) bool {
	return r == RoleAdmin || r == RoleFacilityManager
}

// IsAdmin reports whether the role is exactly ADMIN.
func IsAdmin(r Role) bool {
	return r == RoleAdmin
}

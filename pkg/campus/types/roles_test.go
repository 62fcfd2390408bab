package types

import "testing"

func TestRoleValid(t *testing.T) {
	for _, r := range Roles {
		if !r.Valid() {
			t.Errorf("expected %s to be valid", r)
		}
	}
	if Role("SUPERUSER").Valid() {
		t.Error("unknown role reported valid")
	}
	if Role("").Valid() {
		t.Error("empty role reported valid")
	}
}

func TestCanManageResources(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleResourceManager, true},
		{RoleFacilityManager, true},
		{RoleUser, false},
		{Role(""), false},
	}

	for _, tt := range tests {
		if got := CanManageResources(tt.role); got != tt.want {
			t.Errorf("CanManageResources(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestCanApproveBookings(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleFacilityManager, true},
		{RoleResourceManager, false},
		{RoleUser, false},
	}

	for _, tt := range tests {
		if got := CanApproveBookings(tt.role); got != tt.want {
			t.Errorf("CanApproveBookings(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestIsAdmin(t *testing.T) {
	if !IsAdmin(RoleAdmin) {
		t.Error("IsAdmin(ADMIN) = false")
	}
	// Not a superset check: managers are not admins.
	if IsAdmin(RoleFacilityManager) || IsAdmin(RoleResourceManager) || IsAdmin(RoleUser) {
		t.Error("IsAdmin accepted a non-admin role")
	}
}

func TestDisplayName(t *testing.T) {
	name := "Dana Smith"
	u := UserInfo{UserID: "u1", Email: "dana@campus.edu", Name: &name}
	if got := u.DisplayName(); got != "Dana Smith" {
		t.Errorf("DisplayName() = %q, want name", got)
	}

	u.Name = nil
	if got := u.DisplayName(); got != "dana@campus.edu" {
		t.Errorf("DisplayName() = %q, want email fallback", got)
	}

	empty := ""
	u.Name = &empty
	if got := u.DisplayName(); got != "dana@campus.edu" {
		t.Errorf("DisplayName() with empty name = %q, want email fallback", got)
	}
}

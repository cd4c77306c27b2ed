package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func userWithRole(role Role) *User {
	return &User{ID: "u1", Username: "deniz", Email: "deniz@gmail.com", Role: role}
}

func TestCapabilitiesOfNilUser(t *testing.T) {
	caps := CapabilitiesOf(nil)

	assert.False(t, caps.IsAuthenticated)
	assert.False(t, caps.IsModerator)
	assert.False(t, caps.IsAdmin)
}

func TestCapabilitiesPerRole(t *testing.T) {
	cases := []struct {
		role        Role
		isModerator bool
		isAdmin     bool
	}{
		{RoleUser, false, false},
		{RoleModerator, true, false},
		{RoleAdmin, true, true},
		{RoleSuperAdmin, true, true},
	}

	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			caps := CapabilitiesOf(userWithRole(tc.role))

			assert.True(t, caps.IsAuthenticated)
			assert.Equal(t, tc.isModerator, caps.IsModerator)
			assert.Equal(t, tc.isAdmin, caps.IsAdmin)
		})
	}
}

// Admin always implies moderator: there is no role whose capabilities
// set IsAdmin without IsModerator.
func TestCapabilityContainment(t *testing.T) {
	roles := []Role{RoleUser, RoleModerator, RoleAdmin, RoleSuperAdmin, Role("BOGUS"), Role("")}
	for _, role := range roles {
		caps := CapabilitiesOf(userWithRole(role))
		if caps.IsAdmin {
			assert.True(t, caps.IsModerator, "role %q grants admin without moderator", role)
		}
	}
}

func TestUnknownRoleGetsNoElevatedCapabilities(t *testing.T) {
	caps := CapabilitiesOf(userWithRole(Role("OWNER")))

	assert.True(t, caps.IsAuthenticated)
	assert.False(t, caps.IsModerator)
	assert.False(t, caps.IsAdmin)
}

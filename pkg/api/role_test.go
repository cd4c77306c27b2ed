package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleOrdering(t *testing.T) {
	ordered := []Role{RoleUser, RoleModerator, RoleAdmin, RoleSuperAdmin}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Level(), ordered[i-1].Level(),
			"%s should outrank %s", ordered[i], ordered[i-1])
	}
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleModerator))
	assert.True(t, RoleAdmin.AtLeast(RoleAdmin))
	assert.True(t, RoleSuperAdmin.AtLeast(RoleAdmin))
	assert.False(t, RoleModerator.AtLeast(RoleAdmin))
	assert.False(t, RoleUser.AtLeast(RoleModerator))
}

func TestUnknownRoleRanksLowest(t *testing.T) {
	unknown := Role("OWNER")

	assert.False(t, unknown.Known())
	assert.Equal(t, RoleUser.Level(), unknown.Level())
	assert.False(t, unknown.AtLeast(RoleModerator))
	assert.False(t, unknown.AtLeast(RoleAdmin))
}

func TestAssignableRolesExcludeSuperAdmin(t *testing.T) {
	for _, r := range AssignableRoles() {
		assert.NotEqual(t, RoleSuperAdmin, r)
		assert.True(t, r.Known())
	}
}

package api

// Role is the privilege level of a kinea account. Roles form a total
// order: RoleUser < RoleModerator < RoleAdmin < RoleSuperAdmin.
type Role string

const (
	RoleUser       Role = "USER"
	RoleModerator  Role = "MODERATOR"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

var roleLevels = map[Role]int{
	RoleUser:       0,
	RoleModerator:  1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// Level returns the position of the role in the privilege order.
// Unknown role strings rank as RoleUser, never higher.
func (r Role) Level() int {
	return roleLevels[r]
}

// Known reports whether r is one of the declared roles.
func (r Role) Known() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r carries at least the privilege of min.
func (r Role) AtLeast(min Role) bool {
	return r.Level() >= min.Level()
}

// AssignableRoles are the roles an administrator may set on an account.
// RoleSuperAdmin is created at bootstrap only and is never assigned.
func AssignableRoles() []Role {
	return []Role{RoleUser, RoleModerator, RoleAdmin}
}

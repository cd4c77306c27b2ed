package api

// Capabilities are the derived authorization flags of a session. They
// are a pure function of the current user record and are recomputed on
// every read; nothing in the client stores them independently.
type Capabilities struct {
	IsAuthenticated bool
	IsModerator     bool
	IsAdmin         bool
}

// CapabilitiesOf derives the capability flags for the given user. A nil
// user is the unauthenticated, least privileged state: all flags false.
func CapabilitiesOf(user *User) Capabilities {
	if user == nil {
		return Capabilities{}
	}
	return Capabilities{
		IsAuthenticated: true,
		IsModerator:     user.Role.AtLeast(RoleModerator),
		IsAdmin:         user.Role.AtLeast(RoleAdmin),
	}
}

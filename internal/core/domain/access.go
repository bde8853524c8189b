package domain

// Action names an operation guarded by the role policy.
type Action string

const (
	ActionAssignRole   Action = "roles:assign"
	ActionReadLeads    Action = "leads:read"
	ActionWriteLeads   Action = "leads:write"
	ActionWriteContent Action = "content:write"
)

// AccessControlState is the view of the role store needed to resolve one
// caller. AdminIdentity is set exactly once, by the bootstrap procedure, and
// Initialized is true iff it is set.
type AccessControlState struct {
	AdminIdentity CallerIdentity
	Initialized   bool
	RoleOverrides map[CallerIdentity]Role
}

// IsAdmin reports whether id holds the admin role. The bootstrap admin always
// wins over the override map, so it can never be locked out.
func (s AccessControlState) IsAdmin(id CallerIdentity) bool {
	if !s.Initialized || id.IsAnonymous() {
		return false
	}
	if id == s.AdminIdentity {
		return true
	}
	return s.RoleOverrides[id] == RoleAdmin
}

// EffectiveRole resolves the role of id with the precedence
// admin > explicit override > profile holder (user) > guest.
func EffectiveRole(s AccessControlState, id CallerIdentity, hasProfile bool) Role {
	if id.IsAnonymous() {
		return RoleGuest
	}
	if s.IsAdmin(id) {
		return RoleAdmin
	}
	if r, ok := s.RoleOverrides[id]; ok && r != RoleAdmin {
		if r == RoleGuest && hasProfile {
			return RoleUser
		}
		return r
	}
	if hasProfile {
		return RoleUser
	}
	return RoleGuest
}

package domain

import "strings"

// CallerIdentity is the opaque principal issued by the identity provider.
// It is compared for equality only and never minted by this service.
type CallerIdentity string

// Anonymous is the identity of a caller that presented no credentials.
const Anonymous CallerIdentity = ""

// IsAnonymous reports whether id is the anonymous identity.
func (id CallerIdentity) IsAnonymous() bool {
	return strings.TrimSpace(string(id)) == ""
}

func (id CallerIdentity) String() string {
	if id.IsAnonymous() {
		return "anonymous"
	}
	return string(id)
}

// Role is the authorization level attached to a caller.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// ParseRole converts s into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleUser, RoleGuest:
		return r, nil
	}
	return "", ErrInvalidInput
}

// UserProfile is the display profile a caller chooses for itself.
type UserProfile struct {
	Name  string  `json:"name" bson:"name"`
	Email *string `json:"email,omitempty" bson:"email,omitempty"`
}

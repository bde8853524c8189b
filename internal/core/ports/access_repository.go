package ports

import (
	"context"

	"github.com/thejurists/site-api/internal/core/domain"
)

// AccessControlRepository persists the role store: the singleton admin slot
// and the override map.
type AccessControlRepository interface {
	// Initialize claims the admin slot for admin in one atomic step. It fails
	// with domain.ErrAlreadyInitialized when the slot is already taken.
	Initialize(ctx context.Context, admin domain.CallerIdentity) error
	// Admin returns the bootstrap admin and whether the slot has been claimed.
	Admin(ctx context.Context) (domain.CallerIdentity, bool, error)
	RoleOverride(ctx context.Context, id domain.CallerIdentity) (domain.Role, bool, error)
	SetRoleOverride(ctx context.Context, id domain.CallerIdentity, role domain.Role) error
}

// ProfileRepository stores one display profile per caller.
type ProfileRepository interface {
	// Get returns nil, nil when the identity has no profile.
	Get(ctx context.Context, id domain.CallerIdentity) (*domain.UserProfile, error)
	Save(ctx context.Context, id domain.CallerIdentity, profile domain.UserProfile) error
}

// PolicyEnforcer decides whether a role may perform a gated action.
type PolicyEnforcer interface {
	Allowed(role domain.Role, action domain.Action) (bool, error)
}

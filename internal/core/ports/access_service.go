package ports

import (
	"context"

	"github.com/thejurists/site-api/internal/core/domain"
)

// Gate is the authorization check every sensitive operation runs first.
type Gate interface {
	Authorize(ctx context.Context, caller domain.CallerIdentity, action domain.Action) error
}

// AccessService exposes the bootstrap procedure and the access control gate.
type AccessService interface {
	Gate
	IsAdminActorFieldInitialized(ctx context.Context) (bool, error)
	InitializeAccessControl(ctx context.Context, caller domain.CallerIdentity) error
	IsCallerAdmin(ctx context.Context, caller domain.CallerIdentity) (bool, error)
	RequireAdmin(ctx context.Context, caller domain.CallerIdentity) error
	GetCallerUserRole(ctx context.Context, caller domain.CallerIdentity) (domain.Role, error)
	AssignCallerUserRole(ctx context.Context, caller, target domain.CallerIdentity, role domain.Role) error
}

// ProfileService manages caller display profiles.
type ProfileService interface {
	GetCallerUserProfile(ctx context.Context, caller domain.CallerIdentity) (*domain.UserProfile, error)
	SaveCallerUserProfile(ctx context.Context, caller domain.CallerIdentity, profile domain.UserProfile) error
	GetUserProfile(ctx context.Context, id domain.CallerIdentity) (*domain.UserProfile, error)
}

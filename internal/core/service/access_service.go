package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/core/ports"
)

// AccessService implements the bootstrap procedure and the access control gate.
type AccessService struct {
	repo     ports.AccessControlRepository
	profiles ports.ProfileRepository
	policy   ports.PolicyEnforcer
	log      zerolog.Logger
}

func NewAccessService(
	repo ports.AccessControlRepository,
	profiles ports.ProfileRepository,
	policy ports.PolicyEnforcer,
	log zerolog.Logger,
) *AccessService {
	return &AccessService{repo: repo, profiles: profiles, policy: policy, log: log}
}

// IsAdminActorFieldInitialized reports whether the admin slot has been claimed.
func (s *AccessService) IsAdminActorFieldInitialized(ctx context.Context) (bool, error) {
	_, ok, err := s.repo.Admin(ctx)
	if err != nil {
		return false, fmt.Errorf("load admin: %w", err)
	}
	return ok, nil
}

// InitializeAccessControl makes caller the one and only bootstrap admin.
// Losing the race yields domain.ErrAlreadyInitialized; callers should re-check
// IsCallerAdmin rather than treat it as fatal.
func (s *AccessService) InitializeAccessControl(ctx context.Context, caller domain.CallerIdentity) error {
	if caller.IsAnonymous() {
		return domain.ErrAnonymousCaller
	}

	if err := s.repo.Initialize(ctx, caller); err != nil {
		if errors.Is(err, domain.ErrAlreadyInitialized) {
			s.log.Warn().Str("caller", caller.String()).Msg("bootstrap attempted after initialization")
			return err
		}
		return fmt.Errorf("initialize access control: %w", err)
	}

	s.log.Info().Str("caller", caller.String()).Msg("access control initialized")
	return nil
}

// IsCallerAdmin reports whether caller holds the admin role. It never fails:
// a store error is logged and answered with false.
func (s *AccessService) IsCallerAdmin(ctx context.Context, caller domain.CallerIdentity) (bool, error) {
	if caller.IsAnonymous() {
		return false, nil
	}
	state, err := s.state(ctx, caller)
	if err != nil {
		s.log.Error().Err(err).Str("caller", caller.String()).Msg("admin check failed, answering false")
		return false, nil
	}
	return state.IsAdmin(caller), nil
}

// RequireAdmin fails with domain.ErrUnauthorized unless caller is an admin.
func (s *AccessService) RequireAdmin(ctx context.Context, caller domain.CallerIdentity) error {
	ok, err := s.IsCallerAdmin(ctx, caller)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

// GetCallerUserRole resolves the effective role of caller.
func (s *AccessService) GetCallerUserRole(ctx context.Context, caller domain.CallerIdentity) (domain.Role, error) {
	if caller.IsAnonymous() {
		return domain.RoleGuest, nil
	}

	state, err := s.state(ctx, caller)
	if err != nil {
		return "", err
	}
	if state.IsAdmin(caller) {
		return domain.RoleAdmin, nil
	}

	profile, err := s.profiles.Get(ctx, caller)
	if err != nil {
		return "", fmt.Errorf("load profile: %w", err)
	}
	return domain.EffectiveRole(state, caller, profile != nil), nil
}

// Authorize checks that caller's effective role is allowed to perform action.
// It runs before any lookup of the records the action touches.
func (s *AccessService) Authorize(ctx context.Context, caller domain.CallerIdentity, action domain.Action) error {
	role, err := s.GetCallerUserRole(ctx, caller)
	if err != nil {
		return err
	}

	allowed, err := s.policy.Allowed(role, action)
	if err != nil {
		return fmt.Errorf("evaluate policy: %w", err)
	}
	if !allowed {
		s.log.Debug().
			Str("caller", caller.String()).
			Str("role", string(role)).
			Str("action", string(action)).
			Msg("action denied")
		return domain.ErrUnauthorized
	}
	return nil
}

// AssignCallerUserRole records an explicit role grant for target. Only admins
// may call it, and the bootstrap admin cannot be demoted.
func (s *AccessService) AssignCallerUserRole(ctx context.Context, caller, target domain.CallerIdentity, role domain.Role) error {
	if err := s.Authorize(ctx, caller, domain.ActionAssignRole); err != nil {
		return err
	}
	if target.IsAnonymous() {
		return fmt.Errorf("assign role: %w: anonymous target", domain.ErrInvalidInput)
	}
	if _, err := domain.ParseRole(string(role)); err != nil {
		return fmt.Errorf("assign role: %w: unknown role %q", domain.ErrInvalidInput, role)
	}

	admin, _, err := s.repo.Admin(ctx)
	if err != nil {
		return fmt.Errorf("load admin: %w", err)
	}
	if target == admin && role != domain.RoleAdmin {
		return domain.ErrAdminDemotion
	}

	if err := s.repo.SetRoleOverride(ctx, target, role); err != nil {
		return fmt.Errorf("assign role: %w", err)
	}

	s.log.Info().
		Str("caller", caller.String()).
		Str("target", target.String()).
		Str("role", string(role)).
		Msg("role assigned")
	return nil
}

// state builds the slice of the role store needed to resolve id.
func (s *AccessService) state(ctx context.Context, id domain.CallerIdentity) (domain.AccessControlState, error) {
	admin, initialized, err := s.repo.Admin(ctx)
	if err != nil {
		return domain.AccessControlState{}, fmt.Errorf("load admin: %w", err)
	}

	state := domain.AccessControlState{
		AdminIdentity: admin,
		Initialized:   initialized,
		RoleOverrides: map[domain.CallerIdentity]domain.Role{},
	}

	role, ok, err := s.repo.RoleOverride(ctx, id)
	if err != nil {
		return domain.AccessControlState{}, fmt.Errorf("load role override: %w", err)
	}
	if ok {
		state.RoleOverrides[id] = role
	}
	return state, nil
}

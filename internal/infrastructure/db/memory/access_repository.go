package memory

import (
	"context"
	"sync"

	"github.com/thejurists/site-api/internal/core/domain"
)

// AccessControlRepository is the in-process role store.
type AccessControlRepository struct {
	mu        sync.RWMutex
	admin     domain.CallerIdentity
	claimed   bool
	overrides map[domain.CallerIdentity]domain.Role
}

func NewAccessControlRepository() *AccessControlRepository {
	return &AccessControlRepository{overrides: make(map[domain.CallerIdentity]domain.Role)}
}

// Initialize is a compare-and-set under the write lock: exactly one caller
// can observe the unclaimed slot.
func (r *AccessControlRepository) Initialize(_ context.Context, admin domain.CallerIdentity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.claimed {
		return domain.ErrAlreadyInitialized
	}
	r.admin = admin
	r.claimed = true
	return nil
}

func (r *AccessControlRepository) Admin(_ context.Context) (domain.CallerIdentity, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.admin, r.claimed, nil
}

func (r *AccessControlRepository) RoleOverride(_ context.Context, id domain.CallerIdentity) (domain.Role, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	role, ok := r.overrides[id]
	return role, ok, nil
}

func (r *AccessControlRepository) SetRoleOverride(_ context.Context, id domain.CallerIdentity, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides[id] = role
	return nil
}

// ProfileRepository keeps one profile per identity.
type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[domain.CallerIdentity]domain.UserProfile
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{profiles: make(map[domain.CallerIdentity]domain.UserProfile)}
}

func (r *ProfileRepository) Get(_ context.Context, id domain.CallerIdentity) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	return cloneProfile(p), nil
}

func (r *ProfileRepository) Save(_ context.Context, id domain.CallerIdentity, p domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[id] = *cloneProfile(p)
	return nil
}

func cloneProfile(p domain.UserProfile) *domain.UserProfile {
	out := domain.UserProfile{Name: p.Name}
	if p.Email != nil {
		email := *p.Email
		out.Email = &email
	}
	return &out
}

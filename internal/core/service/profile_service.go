package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/rs/zerolog"

	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/core/ports"
)

type ProfileService struct {
	repo ports.ProfileRepository
	log  zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, log zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, log: log}
}

// GetCallerUserProfile returns nil for anonymous callers and callers without a profile.
func (s *ProfileService) GetCallerUserProfile(ctx context.Context, caller domain.CallerIdentity) (*domain.UserProfile, error) {
	if caller.IsAnonymous() {
		return nil, nil
	}
	return s.GetUserProfile(ctx, caller)
}

// SaveCallerUserProfile creates or overwrites the caller's own profile.
func (s *ProfileService) SaveCallerUserProfile(ctx context.Context, caller domain.CallerIdentity, profile domain.UserProfile) error {
	if caller.IsAnonymous() {
		return domain.ErrAnonymousCaller
	}

	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Name == "" {
		return fmt.Errorf("save profile: %w: name is required", domain.ErrInvalidInput)
	}
	if profile.Email != nil {
		email := strings.TrimSpace(*profile.Email)
		if email == "" {
			profile.Email = nil
		} else if _, err := mail.ParseAddress(email); err != nil {
			return fmt.Errorf("save profile: %w: invalid email", domain.ErrInvalidInput)
		} else {
			profile.Email = &email
		}
	}

	if err := s.repo.Save(ctx, caller, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	s.log.Debug().Str("caller", caller.String()).Msg("profile saved")
	return nil
}

// GetUserProfile is a public lookup by identity.
func (s *ProfileService) GetUserProfile(ctx context.Context, id domain.CallerIdentity) (*domain.UserProfile, error) {
	if id.IsAnonymous() {
		return nil, nil
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

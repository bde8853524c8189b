package domain

import "errors"

var (
	ErrAnonymousCaller    = errors.New("anonymous caller rejected")
	ErrAlreadyInitialized = errors.New("access control already initialized")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAdminDemotion      = errors.New("bootstrap admin cannot be demoted")
	ErrRateLimited        = errors.New("too many submissions")
)

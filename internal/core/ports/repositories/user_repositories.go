package repositories

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
)

// UserRepository stores the accounts able to sign in.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	SaveUsers(ctx context.Context, users []domain.User) error
}

// SessionRepository stores the single signed-in user record.
type SessionRepository interface {
	// FindCurrentUser returns apperrors.ErrNotFound when nobody is signed in.
	FindCurrentUser(ctx context.Context) (*domain.SessionUser, error)
	SaveCurrentUser(ctx context.Context, user domain.SessionUser) error
	ClearCurrentUser(ctx context.Context) error
}

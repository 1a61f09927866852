package services

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
	"github.com/SscSPs/bukukas_app/internal/dto"
)

// AuthSvc signs users in and out.
type AuthSvc interface {
	// SeedUsers creates the configured administrator when no user exists.
	SeedUsers(ctx context.Context) error

	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context) error

	// CurrentUser returns apperrors.ErrUnauthorized when nobody is signed in.
	CurrentUser(ctx context.Context) (*domain.SessionUser, error)

	ListUsers(ctx context.Context) ([]domain.SessionUser, error)
}

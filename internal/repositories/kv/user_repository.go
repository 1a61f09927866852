package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	"github.com/SscSPs/bukukas_app/internal/middleware"
)

type userRepository struct {
	baseRepository
}

func newUserRepository(store portsrepo.KeyValueStore) portsrepo.UserRepository {
	return &userRepository{baseRepository{store: store}}
}

func (r *userRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	return loadCollection[domain.User](ctx, r.storeFor(ctx), portsrepo.KeyUsers)
}

func (r *userRepository) SaveUsers(ctx context.Context, users []domain.User) error {
	return saveCollection(ctx, r.storeFor(ctx), portsrepo.KeyUsers, users)
}

type sessionRepository struct {
	baseRepository
}

func newSessionRepository(store portsrepo.KeyValueStore) portsrepo.SessionRepository {
	return &sessionRepository{baseRepository{store: store}}
}

func (r *sessionRepository) FindCurrentUser(ctx context.Context) (*domain.SessionUser, error) {
	raw, found, err := r.storeFor(ctx).GetItem(ctx, portsrepo.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", portsrepo.KeyCurrentUser, err)
	}
	if !found || raw == "" {
		return nil, apperrors.ErrNotFound
	}
	var user domain.SessionUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Stored session is not valid JSON", slog.String("error", err.Error()))
		return nil, apperrors.ErrNotFound
	}
	if user.Username == "" {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *sessionRepository) SaveCurrentUser(ctx context.Context, user domain.SessionUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.storeFor(ctx).SetItem(ctx, portsrepo.KeyCurrentUser, string(data))
}

func (r *sessionRepository) ClearCurrentUser(ctx context.Context) error {
	return r.storeFor(ctx).RemoveItem(ctx, portsrepo.KeyCurrentUser)
}

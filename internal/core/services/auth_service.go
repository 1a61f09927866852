package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
	"github.com/SscSPs/bukukas_app/internal/dto"
	"github.com/SscSPs/bukukas_app/internal/middleware"
	"github.com/SscSPs/bukukas_app/internal/platform/config"
	"github.com/SscSPs/bukukas_app/internal/utils"
)

// authService signs users in against dataUsers and keeps the currentUser slot.
type authService struct {
	BaseService
	cfg         *config.Config
	userRepo    portsrepo.UserRepository
	sessionRepo portsrepo.SessionRepository
	activitySvc portssvc.ActivitySvc
}

// NewAuthService creates the auth service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository, sessionRepo portsrepo.SessionRepository, activitySvc portssvc.ActivitySvc, options ...Option) portssvc.AuthSvc {
	return &authService{
		BaseService: newBaseService(options),
		cfg:         cfg,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		activitySvc: activitySvc,
	}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) SeedUsers(ctx context.Context) error {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	hash, err := utils.HashPassword(s.cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := domain.User{
		Username:     s.cfg.AdminUsername,
		FullName:     s.cfg.AdminFullName,
		Role:         domain.RoleAdmin,
		PasswordHash: hash,
	}
	if err := s.userRepo.SaveUsers(ctx, []domain.User{admin}); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	s.LogInfo(ctx, "Seeded administrator account", slog.String("username", admin.Username))
	return nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	var found *domain.User
	for i := range users {
		if users[i].Username == req.Username {
			found = &users[i]
			break
		}
	}
	if found == nil || !utils.CheckPasswordHash(req.Password, found.PasswordHash) {
		s.LogDebug(ctx, "Login rejected", slog.String("username", req.Username))
		s.Notify(ctx, "Username atau password salah", domain.SeverityError)
		return nil, apperrors.ErrUnauthorized
	}

	session := found.Session()
	token, err := utils.GenerateJWT(session, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("username", session.Username))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.sessionRepo.SaveCurrentUser(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	if err := s.activitySvc.Record(middleware.WithUser(ctx, session), "Login ke sistem"); err != nil {
		s.LogError(ctx, err, "Failed to log login activity")
	}

	s.Notify(ctx, fmt.Sprintf("Selamat datang, %s", session.FullName), domain.SeveritySuccess)
	return &dto.LoginResponse{Token: token, User: session}, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.activitySvc.Record(ctx, "Logout dari sistem"); err != nil {
		s.LogError(ctx, err, "Failed to log logout activity")
	}
	if err := s.sessionRepo.ClearCurrentUser(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context) (*domain.SessionUser, error) {
	return resolveCurrentUser(ctx, s.sessionRepo)
}

func (s *authService) ListUsers(ctx context.Context) ([]domain.SessionUser, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SessionUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Session())
	}
	return out, nil
}

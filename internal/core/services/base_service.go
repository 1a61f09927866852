package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
	"github.com/SscSPs/bukukas_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Notifier portssvc.Notifier
	Now      func() time.Time
}

// Option configures the BaseService embedded in every service.
type Option func(*BaseService)

// WithNotifier sets where user-facing messages are sent.
func WithNotifier(n portssvc.Notifier) Option {
	return func(b *BaseService) {
		b.Notifier = n
	}
}

// WithClock overrides the time source used for "today".
func WithClock(now func() time.Time) Option {
	return func(b *BaseService) {
		b.Now = now
	}
}

func newBaseService(options []Option) BaseService {
	b := BaseService{Notifier: nopNotifier{}, Now: time.Now}
	for _, option := range options {
		option(&b)
	}
	return b
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Notify forwards message to the configured Notifier.
func (s *BaseService) Notify(ctx context.Context, message string, severity domain.Severity) {
	s.Notifier.Notify(ctx, message, severity)
}

// Today is the current date in the stored layout.
func (s *BaseService) Today() string {
	return domain.FormatDate(s.Now())
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, string, domain.Severity) {}

// StaticConfirmer answers every confirmation with the same value. HTTP and CLI
// callers build it from an explicit confirm flag.
type StaticConfirmer bool

func (c StaticConfirmer) Confirm(context.Context, string) bool {
	return bool(c)
}

var _ portssvc.Confirmer = StaticConfirmer(true)

// resolveCurrentUser returns the user set on ctx by the auth middleware,
// falling back to the stored session record.
func resolveCurrentUser(ctx context.Context, sessions portsrepo.SessionRepository) (*domain.SessionUser, error) {
	if user, ok := middleware.GetUserFromCtx(ctx); ok {
		return &user, nil
	}
	if sessions == nil {
		return nil, apperrors.ErrUnauthorized
	}
	user, err := sessions.FindCurrentUser(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

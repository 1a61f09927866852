package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
)

// EventSink receives a copy of every recorded activity. It is satisfied by
// utils.PosthogClientWrapper.
type EventSink interface {
	Enqueue(distinctId string, event string, properties map[string]any)
}

type activityService struct {
	BaseService
	activityRepo portsrepo.ActivityLogRepository
	sessionRepo  portsrepo.SessionRepository
	limit        int
	events       EventSink
	batch        portsrepo.BatchRunner
}

// inlineBatch runs fn directly. It stands in when no BatchRunner is wired.
type inlineBatch struct{}

func (inlineBatch) RunInBatch(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ActivityOption configures the activity service.
type ActivityOption func(*activityService)

// WithActivityLimit overrides how many entries are retained.
func WithActivityLimit(limit int) ActivityOption {
	return func(s *activityService) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithEventSink mirrors every entry to sink as an "activity" event.
func WithEventSink(sink EventSink) ActivityOption {
	return func(s *activityService) {
		s.events = sink
	}
}

// WithActivityBatch appends entries inside batch, so a Record made outside any
// other operation still serializes with the other writers of the store.
func WithActivityBatch(batch portsrepo.BatchRunner) ActivityOption {
	return func(s *activityService) {
		if batch != nil {
			s.batch = batch
		}
	}
}

// NewActivityService creates the activity log service.
func NewActivityService(activityRepo portsrepo.ActivityLogRepository, sessionRepo portsrepo.SessionRepository, options []Option, activityOptions ...ActivityOption) portssvc.ActivitySvc {
	svc := &activityService{
		BaseService:  newBaseService(options),
		activityRepo: activityRepo,
		sessionRepo:  sessionRepo,
		limit:        domain.DefaultActivityLogLimit,
		batch:        inlineBatch{},
	}
	for _, option := range activityOptions {
		option(svc)
	}
	return svc
}

var _ portssvc.ActivitySvc = (*activityService)(nil)

func (s *activityService) Record(ctx context.Context, description string) error {
	user, err := resolveCurrentUser(ctx, s.sessionRepo)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return nil
		}
		s.LogError(ctx, err, "Failed to resolve current user for activity log")
		return err
	}

	entry := domain.ActivityLogEntry{
		Timestamp:   s.Now().UTC(),
		Username:    user.Username,
		Role:        string(user.Role),
		Description: description,
	}
	err = s.batch.RunInBatch(ctx, func(ctx context.Context) error {
		logs, err := s.activityRepo.ListActivityLogs(ctx)
		if err != nil {
			return fmt.Errorf("failed to load activity logs: %w", err)
		}
		logs = append(logs, entry)
		if len(logs) > s.limit {
			logs = logs[len(logs)-s.limit:]
		}
		if err := s.activityRepo.SaveActivityLogs(ctx, logs); err != nil {
			s.LogError(ctx, err, "Failed to save activity log", slog.String("activity", description))
			return fmt.Errorf("failed to save activity logs: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.events != nil {
		s.events.Enqueue(user.Username, "activity", map[string]any{
			"activity": description,
			"role":     string(user.Role),
		})
	}
	s.LogDebug(ctx, "Activity recorded", slog.String("username", user.Username), slog.String("activity", description))
	return nil
}

func (s *activityService) ListActivityLogs(ctx context.Context) ([]domain.ActivityLogEntry, error) {
	return s.activityRepo.ListActivityLogs(ctx)
}

package repositories

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
)

// ActivityLogRepository stores the bounded activity trail.
type ActivityLogRepository interface {
	ListActivityLogs(ctx context.Context) ([]domain.ActivityLogEntry, error)
	SaveActivityLogs(ctx context.Context, entries []domain.ActivityLogEntry) error
}

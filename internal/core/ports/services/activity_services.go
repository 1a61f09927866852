package services

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
)

// ActivitySvc maintains the bounded audit trail of user actions.
type ActivitySvc interface {
	// Record appends description for the signed-in user. Without a signed-in
	// user it does nothing.
	Record(ctx context.Context, description string) error

	// ListActivityLogs returns the retained entries, oldest first.
	ListActivityLogs(ctx context.Context) ([]domain.ActivityLogEntry, error)
}

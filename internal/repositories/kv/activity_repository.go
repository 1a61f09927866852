package kv

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
)

type activityRepository struct {
	baseRepository
}

func newActivityRepository(store portsrepo.KeyValueStore) portsrepo.ActivityLogRepository {
	return &activityRepository{baseRepository{store: store}}
}

func (r *activityRepository) ListActivityLogs(ctx context.Context) ([]domain.ActivityLogEntry, error) {
	return loadCollection[domain.ActivityLogEntry](ctx, r.storeFor(ctx), portsrepo.KeyActivityLogs)
}

func (r *activityRepository) SaveActivityLogs(ctx context.Context, entries []domain.ActivityLogEntry) error {
	return saveCollection(ctx, r.storeFor(ctx), portsrepo.KeyActivityLogs, entries)
}

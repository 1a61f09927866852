package kv

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
)

type journalRepository struct {
	baseRepository
}

func newJournalRepository(store portsrepo.KeyValueStore) portsrepo.JournalRepositoryFacade {
	return &journalRepository{baseRepository{store: store}}
}

func (r *journalRepository) ListJournalLines(ctx context.Context) ([]domain.JournalLine, error) {
	return loadCollection[domain.JournalLine](ctx, r.storeFor(ctx), portsrepo.KeyJournal)
}

func (r *journalRepository) SaveJournalLines(ctx context.Context, lines []domain.JournalLine) error {
	return saveCollection(ctx, r.storeFor(ctx), portsrepo.KeyJournal, lines)
}

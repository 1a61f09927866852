package repositories

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
)

// JournalReader defines read operations for journal lines.
type JournalReader interface {
	// ListJournalLines returns the whole journal in insertion order.
	ListJournalLines(ctx context.Context) ([]domain.JournalLine, error)
}

// JournalWriter defines write operations for journal lines.
type JournalWriter interface {
	// SaveJournalLines overwrites the whole journal.
	SaveJournalLines(ctx context.Context, lines []domain.JournalLine) error
}

// JournalRepositoryFacade combines journal read and write access.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

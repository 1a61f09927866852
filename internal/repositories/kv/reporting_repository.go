package kv

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
)

type reportRepository struct {
	baseRepository
}

func newReportRepository(store portsrepo.KeyValueStore) portsrepo.ReportRepositoryFacade {
	return &reportRepository{baseRepository{store: store}}
}

func (r *reportRepository) ListReportRows(ctx context.Context) ([]domain.FinancialReportRow, error) {
	return loadCollection[domain.FinancialReportRow](ctx, r.storeFor(ctx), portsrepo.KeyReport)
}

func (r *reportRepository) SaveReportRows(ctx context.Context, rows []domain.FinancialReportRow) error {
	return saveCollection(ctx, r.storeFor(ctx), portsrepo.KeyReport, rows)
}

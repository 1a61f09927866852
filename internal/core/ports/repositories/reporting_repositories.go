package repositories

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
)

// ReportReader defines read operations for financial report rows.
type ReportReader interface {
	// ListReportRows returns every report row in insertion order.
	ListReportRows(ctx context.Context) ([]domain.FinancialReportRow, error)
}

// ReportWriter defines write operations for financial report rows.
type ReportWriter interface {
	// SaveReportRows overwrites the whole report.
	SaveReportRows(ctx context.Context, rows []domain.FinancialReportRow) error
}

// ReportRepositoryFacade combines report read and write access.
type ReportRepositoryFacade interface {
	ReportReader
	ReportWriter
}

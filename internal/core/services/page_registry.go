package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
	"github.com/SscSPs/bukukas_app/internal/dto"
)

// Registered pages.
const (
	PageDashboard    = "dashboard"
	PageCustomers    = "pelanggan"
	PageUsers        = "pengguna"
	PageActivityLogs = "activity-logs"
	PageInvoices     = "invoice"
	PageJournal      = "jurnal"
	PageReport       = "laporan"
)

const recentActivityCount = 10

// PageRoutine loads the data one page shows.
type PageRoutine func(ctx context.Context) (any, error)

type pageEntry struct {
	routine   PageRoutine
	adminOnly bool
}

type pageRegistry struct {
	BaseService
	auth       portssvc.AuthSvc
	activity   portssvc.ActivitySvc
	reconciler portssvc.ReconcilerSvc
	batch      portsrepo.BatchRunner
	pages      map[string]pageEntry
}

// NewPageRegistry maps every page of the application to its init routine.
// Each initialization runs in one batch so the sweep and the page data see
// the same store.
func NewPageRegistry(c *portssvc.ServiceContainer, batch portsrepo.BatchRunner, options ...Option) portssvc.PageSvc {
	r := &pageRegistry{
		BaseService: newBaseService(options),
		auth:        c.Auth,
		activity:    c.Activity,
		reconciler:  c.Report,
		batch:       batch,
	}
	r.pages = map[string]pageEntry{
		PageDashboard: {routine: func(ctx context.Context) (any, error) {
			return loadDashboard(ctx, c)
		}},
		PageCustomers: {routine: func(ctx context.Context) (any, error) {
			return c.Customer.ListCustomers(ctx)
		}},
		PageUsers: {adminOnly: true, routine: func(ctx context.Context) (any, error) {
			return c.Auth.ListUsers(ctx)
		}},
		PageActivityLogs: {routine: func(ctx context.Context) (any, error) {
			return c.Activity.ListActivityLogs(ctx)
		}},
		PageInvoices: {routine: func(ctx context.Context) (any, error) {
			return c.Invoice.ListInvoices(ctx)
		}},
		PageJournal: {routine: func(ctx context.Context) (any, error) {
			return c.Journal.ListJournalLines(ctx)
		}},
		PageReport: {routine: func(ctx context.Context) (any, error) {
			rows, err := c.Report.ListReportRows(ctx)
			if err != nil {
				return nil, err
			}
			return dto.ReportPageData{Rows: rows, Summary: domain.Summarize(rows)}, nil
		}},
	}
	return r
}

var _ portssvc.PageSvc = (*pageRegistry)(nil)

func (r *pageRegistry) Pages() []string {
	names := make([]string, 0, len(r.pages))
	for name := range r.pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *pageRegistry) InitializePage(ctx context.Context, page string) (*dto.PageResponse, error) {
	user, err := r.auth.CurrentUser(ctx)
	if err != nil {
		r.Notify(ctx, "Silakan login terlebih dahulu", domain.SeverityError)
		return nil, err
	}

	entry, ok := r.pages[page]
	if !ok {
		return nil, fmt.Errorf("%w: halaman %q tidak dikenal", apperrors.ErrValidation, page)
	}
	if entry.adminOnly && !user.IsAdmin() {
		return nil, fmt.Errorf("%w: halaman %s hanya untuk admin", apperrors.ErrForbidden, page)
	}

	var (
		data  any
		swept int
	)
	err = r.batch.RunInBatch(ctx, func(ctx context.Context) error {
		var err error
		if swept, err = r.reconciler.PruneOrphans(ctx); err != nil {
			r.LogError(ctx, err, "Failed to sweep financial report", slog.String("page", page))
			return err
		}

		if data, err = entry.routine(ctx); err != nil {
			r.LogError(ctx, err, "Failed to initialize page", slog.String("page", page))
			return err
		}

		if err := r.activity.Record(ctx, fmt.Sprintf("User %s (%s) mengakses halaman %s", user.Username, user.Role, page)); err != nil {
			r.LogError(ctx, err, "Failed to log page visit", slog.String("page", page))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if swept > 0 {
		r.Notify(ctx, msgReportSwept, domain.SeverityInfo)
	}

	return &dto.PageResponse{Page: page, User: *user, Data: data}, nil
}

func loadDashboard(ctx context.Context, c *portssvc.ServiceContainer) (dto.DashboardData, error) {
	var data dto.DashboardData

	invoices, err := c.Invoice.ListInvoices(ctx)
	if err != nil {
		return data, err
	}
	customers, err := c.Customer.ListCustomers(ctx)
	if err != nil {
		return data, err
	}
	summary, err := c.Report.Summary(ctx)
	if err != nil {
		return data, err
	}
	logs, err := c.Activity.ListActivityLogs(ctx)
	if err != nil {
		return data, err
	}

	data.InvoiceCount = len(invoices)
	for _, inv := range invoices {
		if !inv.IsPaid() {
			data.UnpaidCount++
		}
	}
	data.CustomerCount = len(customers)
	data.ReportSummary = *summary
	if len(logs) > recentActivityCount {
		logs = logs[len(logs)-recentActivityCount:]
	}
	data.RecentActivity = logs
	return data, nil
}

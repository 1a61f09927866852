package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	"github.com/SscSPs/bukukas_app/internal/core/services"
	"github.com/SscSPs/bukukas_app/internal/dto"
	"github.com/SscSPs/bukukas_app/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRegistry_ListsEveryPage(t *testing.T) {
	env := newTestEnv()
	assert.Equal(t, []string{
		services.PageActivityLogs,
		services.PageDashboard,
		services.PageInvoices,
		services.PageJournal,
		services.PageReport,
		services.PageCustomers,
		services.PageUsers,
	}, env.svc.Pages.Pages())
}

func TestPageRegistry_InitializePage(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.svc.Auth.SeedUsers(env.ctx))

	for _, page := range env.svc.Pages.Pages() {
		t.Run(page, func(t *testing.T) {
			resp, err := env.svc.Pages.InitializePage(env.ctx, page)
			require.NoError(t, err)
			assert.Equal(t, page, resp.Page)
			assert.Equal(t, testAdmin, resp.User)
		})
	}

	logs, err := env.svc.Activity.ListActivityLogs(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, "User admin (admin) mengakses halaman pengguna", logs[len(logs)-1].Description)
}

func TestPageRegistry_SweepsBeforeLoading(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.svc.Report.RecordSale(env.ctx, domain.Invoice{
		InvoiceNumber: "INV-001", Date: "2024-01-05", CustomerName: "Budi", Total: decimal.NewFromInt(1000),
	}))

	resp, err := env.svc.Pages.InitializePage(env.ctx, services.PageReport)
	require.NoError(t, err)
	data, ok := resp.Data.(dto.ReportPageData)
	require.True(t, ok)
	assert.Empty(t, data.Rows)
	assert.Contains(t, env.messages(), "Data laporan keuangan telah dibersihkan dari invoice yang sudah dihapus")
}

func TestPageRegistry_Errors(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.Pages.InitializePage(context.Background(), services.PageDashboard)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	_, err = env.svc.Pages.InitializePage(env.ctx, "rahasia")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	staffCtx := middleware.WithUser(context.Background(), testStaff)
	_, err = env.svc.Pages.InitializePage(staffCtx, services.PageUsers)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))

	_, err = env.svc.Pages.InitializePage(staffCtx, services.PageInvoices)
	assert.NoError(t, err)
}

func TestPageRegistry_DashboardCounts(t *testing.T) {
	env := newTestEnv()
	_, err := env.svc.Invoice.CreateInvoice(env.ctx, dto.CreateInvoiceRequest{
		Date: "2024-01-05", CustomerName: "Budi", Total: decimal.NewFromInt(1000), PaymentMethod: "Transfer",
	})
	require.NoError(t, err)

	resp, err := env.svc.Pages.InitializePage(env.ctx, services.PageDashboard)
	require.NoError(t, err)
	data, ok := resp.Data.(dto.DashboardData)
	require.True(t, ok)
	assert.Equal(t, 1, data.InvoiceCount)
	assert.Equal(t, 1, data.UnpaidCount)
	assert.True(t, data.ReportSummary.TotalCredit.Equal(decimal.NewFromInt(1000)))
	assert.NotEmpty(t, data.RecentActivity)
}

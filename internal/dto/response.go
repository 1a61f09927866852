package dto

import "github.com/SscSPs/bukukas_app/internal/core/domain"

// Response wraps every API payload with the notifications raised while serving it.
type Response struct {
	Data          any                   `json:"data,omitempty"`
	Notifications []domain.Notification `json:"notifications"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error         string                `json:"error"`
	Notifications []domain.Notification `json:"notifications,omitempty"`
}

// PageResponse is the data a page needs after initialization.
type PageResponse struct {
	Page string             `json:"page"`
	User domain.SessionUser `json:"user"`
	Data any                `json:"data"`
}

// DashboardData summarizes the books for the landing page.
type DashboardData struct {
	InvoiceCount   int                       `json:"invoiceCount"`
	UnpaidCount    int                       `json:"unpaidCount"`
	CustomerCount  int                       `json:"customerCount"`
	ReportSummary  domain.ReportSummary      `json:"reportSummary"`
	RecentActivity []domain.ActivityLogEntry `json:"recentActivity"`
}

// ReportPageData is the financial report with its totals.
type ReportPageData struct {
	Rows    []domain.FinancialReportRow `json:"rows"`
	Summary domain.ReportSummary        `json:"summary"`
}

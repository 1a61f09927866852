package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	"github.com/SscSPs/bukukas_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type JournalServiceTestSuite struct {
	suite.Suite
	env *testEnv
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.env = newTestEnv()
}

func (suite *JournalServiceTestSuite) lines() []domain.JournalLine {
	lines, err := suite.env.svc.Journal.ListJournalLines(suite.env.ctx)
	suite.Require().NoError(err)
	return lines
}

func (suite *JournalServiceTestSuite) TestRecordSale_Balanced() {
	tests := []struct {
		method      string
		wantAccount string
	}{
		{domain.PaymentMethodCash, domain.AccountCash},
		{"Transfer", domain.AccountReceivable},
		{"", domain.AccountReceivable},
	}
	for _, tt := range tests {
		suite.Run(tt.method, func() {
			suite.SetupTest()
			inv := sampleInvoice("INV-001", 75000)
			inv.PaymentMethod = tt.method
			suite.Require().NoError(suite.env.svc.Journal.RecordSale(suite.env.ctx, inv))

			lines := suite.lines()
			suite.Require().Len(lines, 2)
			suite.Equal(domain.AccountServiceRevenue, lines[0].Account)
			suite.Equal(tt.wantAccount, lines[1].Account)
			suite.True(lines[0].Credit.Equal(lines[1].Debit))
			suite.True(lines[0].Debit.IsZero())
			suite.True(lines[1].Credit.IsZero())
		})
	}
}

func (suite *JournalServiceTestSuite) TestRecordPayment_DatesToTodayWithoutPaymentDate() {
	inv := sampleInvoice("INV-001", 75000)
	suite.Require().NoError(suite.env.svc.Journal.RecordPayment(suite.env.ctx, inv))

	lines := suite.lines()
	suite.Require().Len(lines, 2)
	suite.Equal("2024-01-15", lines[0].Date)
	suite.Equal(domain.AccountReceivable, lines[0].Account)
	suite.Equal(domain.AccountCash, lines[1].Account)
}

func (suite *JournalServiceTestSuite) TestRemoveByInvoice() {
	suite.Require().NoError(suite.env.svc.Journal.RecordSale(suite.env.ctx, sampleInvoice("INV-001", 1000)))
	suite.Require().NoError(suite.env.svc.Journal.RecordSale(suite.env.ctx, sampleInvoice("INV-002", 2000)))
	suite.Require().NoError(suite.env.svc.Journal.RecordPayment(suite.env.ctx, sampleInvoice("INV-001", 1000)))

	removed, err := suite.env.svc.Journal.RemoveByInvoice(suite.env.ctx, "INV-001")
	suite.Require().NoError(err)
	suite.Equal(4, removed)

	byInvoice, err := suite.env.svc.Journal.ListByInvoice(suite.env.ctx, "INV-002")
	suite.Require().NoError(err)
	suite.Len(byInvoice, 2)
	suite.Len(suite.lines(), 2)

	removed, err = suite.env.svc.Journal.RemoveByInvoice(suite.env.ctx, "INV-404")
	suite.Require().NoError(err)
	suite.Zero(removed)
}

func (suite *JournalServiceTestSuite) TestRecordManual_MirrorsToReport() {
	err := suite.env.svc.Journal.RecordManual(suite.env.ctx, []domain.JournalLine{
		{Date: "2024-01-02", Account: domain.AccountCash, Debit: decimal.NewFromInt(1000000), Description: "Setoran modal"},
		{Date: "2024-01-02", Account: domain.AccountOwnerEquity, Credit: decimal.NewFromInt(1000000), Description: "Setoran modal", InvoiceNumber: "INV-999"},
	})
	suite.Require().NoError(err)

	lines := suite.lines()
	suite.Require().Len(lines, 2)
	for _, l := range lines {
		suite.Empty(l.InvoiceNumber)
		suite.False(l.FromInvoice)
	}

	rows, err := suite.env.svc.Report.ListReportRows(suite.env.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal(domain.EntryDebit, rows[0].EntryType)
	suite.Equal(domain.EntryCredit, rows[1].EntryType)
	suite.True(rows[1].IsManual())

	tb, err := suite.env.svc.Journal.TrialBalance(suite.env.ctx)
	suite.Require().NoError(err)
	for _, row := range tb {
		if row.Account == domain.AccountCash {
			suite.True(row.Balance.Equal(decimal.NewFromInt(1000000)))
		}
	}
}

func (suite *JournalServiceTestSuite) TestRecordManual_Validation() {
	tests := []struct {
		name  string
		lines []domain.JournalLine
	}{
		{"empty", nil},
		{"unknown account", []domain.JournalLine{{Date: "2024-01-02", Account: "Bank BCA", Debit: decimal.NewFromInt(1)}}},
		{"both sides", []domain.JournalLine{{Date: "2024-01-02", Account: domain.AccountCash, Debit: decimal.NewFromInt(1), Credit: decimal.NewFromInt(1)}}},
		{"bad date", []domain.JournalLine{{Date: "kemarin", Account: domain.AccountCash, Debit: decimal.NewFromInt(1)}}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := suite.env.svc.Journal.RecordManual(suite.env.ctx, tt.lines)
			suite.True(errors.Is(err, apperrors.ErrValidation))
			suite.Empty(suite.lines())
		})
	}
}

func (suite *JournalServiceTestSuite) TestDeleteLine_RemovesMatchingReportRow() {
	line := domain.JournalLine{Date: "2024-01-07", Account: domain.AccountOperatingCost, Debit: decimal.NewFromInt(50000), Description: "Listrik"}
	suite.Require().NoError(suite.env.svc.Journal.RecordManual(suite.env.ctx, []domain.JournalLine{line}))

	deleted, err := suite.env.svc.Journal.DeleteLine(suite.env.ctx, 0, services.StaticConfirmer(false))
	suite.Require().NoError(err)
	suite.False(deleted)
	suite.Len(suite.lines(), 1)

	deleted, err = suite.env.svc.Journal.DeleteLine(suite.env.ctx, 0, services.StaticConfirmer(true))
	suite.Require().NoError(err)
	suite.True(deleted)
	suite.Empty(suite.lines())

	rows, err := suite.env.svc.Report.ListReportRows(suite.env.ctx)
	suite.Require().NoError(err)
	suite.Empty(rows)

	_, err = suite.env.svc.Journal.DeleteLine(context.Background(), 3, services.StaticConfirmer(true))
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

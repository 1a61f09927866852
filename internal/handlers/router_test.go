package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/bukukas_app/internal/adapters/export"
	"github.com/SscSPs/bukukas_app/internal/adapters/kvstore/memstore"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	"github.com/SscSPs/bukukas_app/internal/core/services"
	"github.com/SscSPs/bukukas_app/internal/handlers"
	"github.com/SscSPs/bukukas_app/internal/notify"
	"github.com/SscSPs/bukukas_app/internal/platform/config"
	"github.com/SscSPs/bukukas_app/internal/repositories/kv"
)

type envelope struct {
	Data          json.RawMessage       `json:"data"`
	Error         string                `json:"error"`
	Notifications []domain.Notification `json:"notifications"`
}

func (e envelope) messages() []string {
	out := make([]string, 0, len(e.Notifications))
	for _, n := range e.Notifications {
		out = append(out, n.Message)
	}
	return out
}

type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
	token  string
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		IsProduction:       true,
		JWTSecret:          "router-test-secret",
		JWTExpiryDuration:  time.Hour,
		JWTIssuer:          "bukukas-test",
		ActivityLogLimit:   domain.DefaultActivityLogLimit,
		AdminUsername:      "admin",
		AdminPassword:      "admin123",
		AdminFullName:      "Administrator",
		RateLimit:          "1000-M",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	container := services.NewServiceContainer(cfg, kv.NewRepositoryProvider(memstore.New()), nil,
		services.WithNotifier(notify.NewNotifier()))
	s.Require().NoError(container.Auth.SeedUsers(context.Background()))

	router, err := handlers.NewRouter(cfg, logger, container)
	s.Require().NoError(err)
	s.router = router

	w, body := s.do(http.MethodPost, "/auth/login", map[string]string{"username": "admin", "password": "admin123"}, false)
	s.Require().Equal(http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(body.Data, &login))
	s.Require().NotEmpty(login.Token)
	s.token = login.Token
}

func (s *RouterTestSuite) do(method, path string, payload any, auth bool) (*httptest.ResponseRecorder, envelope) {
	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var body envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func (s *RouterTestSuite) createInvoice(number, method string) {
	w, _ := s.do(http.MethodPost, "/api/v1/invoices", map[string]any{
		"noInvoice":        number,
		"tanggal":          "2024-01-05",
		"customer":         "Budi",
		"total":            100000,
		"metodePembayaran": method,
	}, true)
	s.Require().Equal(http.StatusCreated, w.Code)
}

func (s *RouterTestSuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *RouterTestSuite) TestAPIRequiresToken() {
	w, _ := s.do(http.MethodGet, "/api/v1/invoices", nil, false)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterTestSuite) TestLogin_WrongPassword() {
	w, body := s.do(http.MethodPost, "/auth/login", map[string]string{"username": "admin", "password": "nope"}, false)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Contains(body.messages(), "Username atau password salah")
}

func (s *RouterTestSuite) TestLogin_BadPayload() {
	w, body := s.do(http.MethodPost, "/auth/login", map[string]string{"username": "admin"}, false)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid request format", body.Error)
}

func (s *RouterTestSuite) TestCreateInvoice_BooksJournalAndReport() {
	w, body := s.do(http.MethodPost, "/api/v1/invoices", map[string]any{
		"noInvoice":        "INV-001",
		"tanggal":          "2024-01-05",
		"customer":         "Budi",
		"total":            100000,
		"metodePembayaran": "Tunai",
	}, true)
	s.Require().Equal(http.StatusCreated, w.Code)
	s.Contains(body.messages(), "Data penjualan berhasil dicatat di jurnal dan laporan keuangan!")

	var invoice domain.Invoice
	s.Require().NoError(json.Unmarshal(body.Data, &invoice))
	s.Equal(domain.StatusPaid, invoice.PaymentStatus)

	_, body = s.do(http.MethodGet, "/api/v1/journal?noInvoice=INV-001", nil, true)
	var lines []domain.JournalLine
	s.Require().NoError(json.Unmarshal(body.Data, &lines))
	s.Len(lines, 2)

	_, body = s.do(http.MethodGet, "/api/v1/reports", nil, true)
	var rows []domain.FinancialReportRow
	s.Require().NoError(json.Unmarshal(body.Data, &rows))
	s.Require().Len(rows, 1)
	s.Equal(domain.ReportAccountSales, rows[0].Account)
}

func (s *RouterTestSuite) TestCreateInvoice_Duplicate() {
	s.createInvoice("INV-001", "Tunai")
	w, _ := s.do(http.MethodPost, "/api/v1/invoices", map[string]any{
		"noInvoice":        "INV-001",
		"tanggal":          "2024-01-06",
		"customer":         "Ani",
		"total":            5000,
		"metodePembayaran": "Tunai",
	}, true)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *RouterTestSuite) TestDeleteInvoice_NeedsConfirmation() {
	s.createInvoice("INV-001", "Transfer")

	w, body := s.do(http.MethodDelete, "/api/v1/invoices/0", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"deleted":false}`, string(body.Data))

	w, body = s.do(http.MethodDelete, "/api/v1/invoices/0?confirm=true", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"deleted":true}`, string(body.Data))

	_, body = s.do(http.MethodGet, "/api/v1/reports", nil, true)
	var rows []domain.FinancialReportRow
	s.Require().NoError(json.Unmarshal(body.Data, &rows))
	s.Empty(rows)
}

func (s *RouterTestSuite) TestDeleteInvoice_BadIndex() {
	w, _ := s.do(http.MethodDelete, "/api/v1/invoices/abc?confirm=true", nil, true)
	s.Equal(http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodDelete, "/api/v1/invoices/7?confirm=true", nil, true)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterTestSuite) TestSetPaymentStatus() {
	s.createInvoice("INV-001", "Transfer")

	w, body := s.do(http.MethodPatch, "/api/v1/invoices/0/status", map[string]string{"status": "Lunas"}, true)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(body.messages(), "Status pembayaran diperbarui dan dicatat di laporan keuangan!")

	w, _ = s.do(http.MethodPatch, "/api/v1/invoices/0/status", map[string]string{"status": "Lunas Sebagian"}, true)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterTestSuite) TestImportInvoices_RejectsNonArray() {
	w, _ := s.do(http.MethodPut, "/api/v1/invoices", map[string]string{"noInvoice": "INV-001"}, true)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterTestSuite) TestManualJournalAndTrialBalance() {
	w, _ := s.do(http.MethodPost, "/api/v1/journal", map[string]any{
		"lines": []map[string]any{
			{"tanggal": "2024-01-02", "akun": "Kas", "keterangan": "Setoran modal", "debit": 500000},
			{"tanggal": "2024-01-02", "akun": "Modal Pemilik", "keterangan": "Setoran modal", "kredit": 500000},
		},
	}, true)
	s.Require().Equal(http.StatusCreated, w.Code)

	w, body := s.do(http.MethodGet, "/api/v1/journal/trial-balance", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	var tb struct {
		Rows []domain.TrialBalanceRow `json:"rows"`
	}
	s.Require().NoError(json.Unmarshal(body.Data, &tb))
	s.Len(tb.Rows, len(domain.ChartOfAccounts))
}

func (s *RouterTestSuite) TestPages() {
	w, body := s.do(http.MethodGet, "/api/v1/pages/dashboard", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(string(body.Data), `"page":"dashboard"`)

	w, _ = s.do(http.MethodGet, "/api/v1/pages/nowhere", nil, true)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterTestSuite) TestCustomers() {
	w, _ := s.do(http.MethodPost, "/api/v1/customers", map[string]string{"nama": "Budi", "email": "budi@example.com"}, true)
	s.Require().Equal(http.StatusCreated, w.Code)

	w, _ = s.do(http.MethodPut, "/api/v1/customers/0", map[string]string{"nama": "Budi Santoso"}, true)
	s.Require().Equal(http.StatusOK, w.Code)

	_, body := s.do(http.MethodGet, "/api/v1/customers", nil, true)
	var customers []domain.Customer
	s.Require().NoError(json.Unmarshal(body.Data, &customers))
	s.Require().Len(customers, 1)
	s.Equal("Budi Santoso", customers[0].Name)

	w, _ = s.do(http.MethodPost, "/api/v1/customers", map[string]string{"nama": "Ani", "email": "not-an-email"}, true)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterTestSuite) TestActivityLogs() {
	s.createInvoice("INV-001", "Tunai")

	_, body := s.do(http.MethodGet, "/api/v1/activity-logs", nil, true)
	var entries []domain.ActivityLogEntry
	s.Require().NoError(json.Unmarshal(body.Data, &entries))
	s.NotEmpty(entries)
	s.Equal("admin", entries[len(entries)-1].Username)
}

func (s *RouterTestSuite) TestExportReport() {
	s.createInvoice("INV-001", "Tunai")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/export", nil)
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(export.ContentType, w.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(w.Body)
	s.Require().NoError(err)
	defer f.Close()
	rows, err := f.GetRows(export.SheetName)
	s.Require().NoError(err)
	s.Len(rows, 3)
}

func TestNotificationMiddleware_AttachesCollector(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers.NotificationMiddleware())
	r.GET("/", func(c *gin.Context) {
		_, ok := notify.CollectorFrom(c.Request.Context())
		assert.True(t, ok)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
}

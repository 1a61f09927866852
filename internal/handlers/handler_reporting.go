package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/bukukas_app/internal/adapters/export"
	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
	"github.com/SscSPs/bukukas_app/internal/middleware"
)

// reportingHandler handles HTTP requests for the financial report.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("", h.listReportRows)
		reports.GET("/summary", h.summary)
		reports.POST("/sweep", h.sweepOrphans)
		reports.GET("/export", h.exportReport)
	}
}

// listReportRows godoc
// @Summary List financial report rows
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=[]domain.FinancialReportRow}
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports [get]
func (h *reportingHandler) listReportRows(c *gin.Context) {
	rows, err := h.reportingService.ListReportRows(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "list report rows")
		return
	}
	respond(c, http.StatusOK, rows)
}

// summary godoc
// @Summary Financial report totals
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=domain.ReportSummary}
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/summary [get]
func (h *reportingHandler) summary(c *gin.Context) {
	summary, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "summarize report")
		return
	}
	respond(c, http.StatusOK, summary)
}

// sweepOrphans godoc
// @Summary Remove orphaned report rows
// @Description Drops report rows that reference invoices which no longer exist. Manual rows are kept.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=map[string]int}
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sweep [post]
func (h *reportingHandler) sweepOrphans(c *gin.Context) {
	removed, err := h.reportingService.SweepOrphans(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "sweep report")
		return
	}
	respond(c, http.StatusOK, gin.H{"removed": removed})
}

// exportReport godoc
// @Summary Export the financial report
// @Description Downloads the report as an xlsx workbook.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/export [get]
func (h *reportingHandler) exportReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.reportingService.ListReportRows(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "export report")
		return
	}

	filename := fmt.Sprintf("laporan-keuangan-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", export.ContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	if err := export.WriteReport(c.Writer, rows); err != nil {
		// headers are already sent
		logger.Error("Failed to write report workbook", slog.String("error", err.Error()))
		return
	}
	logger.Info("Report exported", slog.Int("rows", len(rows)))
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
	"github.com/SscSPs/bukukas_app/internal/dto"
	"github.com/SscSPs/bukukas_app/internal/middleware"
)

// journalHandler handles HTTP requests related to the general journal.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journal := rg.Group("/journal")
	{
		journal.GET("", h.listJournalLines)
		journal.POST("", h.recordManual)
		journal.GET("/trial-balance", h.trialBalance)
		journal.DELETE("/:index", h.deleteLine)
	}
}

// listJournalLines godoc
// @Summary List journal lines
// @Description Returns every journal line in posting order, optionally only those of one invoice.
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Param noInvoice query string false "Invoice number"
// @Success 200 {object} dto.Response{data=[]domain.JournalLine}
// @Failure 500 {object} dto.ErrorResponse
// @Router /journal [get]
func (h *journalHandler) listJournalLines(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		lines any
		err   error
	)
	if number := c.Query("noInvoice"); number != "" {
		lines, err = h.journalService.ListByInvoice(ctx, number)
	} else {
		lines, err = h.journalService.ListJournalLines(ctx)
	}
	if err != nil {
		handleServiceError(c, err, "list journal lines")
		return
	}
	respond(c, http.StatusOK, lines)
}

// recordManual godoc
// @Summary Post manual journal lines
// @Description Appends lines entered by hand and mirrors each one to the financial report.
// @Tags journal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param journal body dto.CreateManualJournalRequest true "Journal lines"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 500 {object} dto.ErrorResponse
// @Router /journal [post]
func (h *journalHandler) recordManual(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateManualJournalRequest
	if !bindJSON(c, &req, "RecordManual") {
		return
	}

	if err := h.journalService.RecordManual(c.Request.Context(), req.ToDomain()); err != nil {
		handleServiceError(c, err, "record journal lines")
		return
	}

	logger.Info("Manual journal lines recorded", slog.Int("lines", len(req.Lines)))
	respond(c, http.StatusCreated, nil)
}

// trialBalance godoc
// @Summary Trial balance
// @Description Totals the journal per account.
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=dto.TrialBalanceResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /journal/trial-balance [get]
func (h *journalHandler) trialBalance(c *gin.Context) {
	rows, err := h.journalService.TrialBalance(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "compute trial balance")
		return
	}
	respond(c, http.StatusOK, dto.NewTrialBalanceResponse(rows))
}

// deleteLine godoc
// @Summary Delete a journal line
// @Description Removes the line and the report rows that match it. Nothing happens unless confirm=true.
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Param index path int true "Line index"
// @Param confirm query bool false "Confirm the deletion"
// @Success 200 {object} dto.Response{data=map[string]bool}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /journal/{index} [delete]
func (h *journalHandler) deleteLine(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	deleted, err := h.journalService.DeleteLine(c.Request.Context(), index, confirmerFor(c))
	if err != nil {
		handleServiceError(c, err, "delete journal line")
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": deleted})
}

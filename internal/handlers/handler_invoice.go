package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
	"github.com/SscSPs/bukukas_app/internal/dto"
	"github.com/SscSPs/bukukas_app/internal/middleware"
)

// invoiceHandler handles HTTP requests related to sales invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(invoiceService portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: invoiceService}
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.POST("", h.createInvoice)
		invoices.PUT("", h.importInvoices)
		invoices.PATCH("/:index/status", h.setPaymentStatus)
		invoices.DELETE("/:index", h.deleteInvoice)
		invoices.POST("/bulk-delete", h.deleteInvoices)
	}
}

// listInvoices godoc
// @Summary List invoices
// @Description Returns every invoice in insertion order. The position in the list is the index used by the other invoice routes.
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=[]domain.Invoice}
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "list invoices")
		return
	}
	respond(c, http.StatusOK, invoices)
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Records a sale and books it in the journal and the financial report.
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param invoice body dto.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} dto.Response{data=domain.Invoice}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Invoice number already used"
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceRequest
	if !bindJSON(c, &req, "CreateInvoice") {
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "create invoice")
		return
	}

	logger.Info("Invoice created", slog.String("invoice_number", invoice.InvoiceNumber))
	respond(c, http.StatusCreated, invoice)
}

// importInvoices godoc
// @Summary Replace all invoices
// @Description Overwrites the invoice collection with a JSON array and sweeps report rows of invoices that are gone.
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param invoices body []domain.Invoice true "Invoices"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse "Payload is not an array"
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices [put]
func (h *invoiceHandler) importInvoices(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.invoiceService.ImportInvoices(c.Request.Context(), payload); err != nil {
		handleServiceError(c, err, "import invoices")
		return
	}
	respond(c, http.StatusOK, nil)
}

// setPaymentStatus godoc
// @Summary Change the payment status of an invoice
// @Description Switching a credit invoice to Lunas books the payment in the journal and the report.
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param index path int true "Invoice index"
// @Param status body dto.UpdatePaymentStatusRequest true "New status"
// @Success 200 {object} dto.Response{data=domain.Invoice}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{index}/status [patch]
func (h *invoiceHandler) setPaymentStatus(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var req dto.UpdatePaymentStatusRequest
	if !bindJSON(c, &req, "SetPaymentStatus") {
		return
	}

	invoice, err := h.invoiceService.SetPaymentStatus(c.Request.Context(), index, req.Status)
	if err != nil {
		handleServiceError(c, err, "update payment status")
		return
	}
	respond(c, http.StatusOK, invoice)
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Description Removes the invoice with its journal lines and report rows. Nothing happens unless confirm=true.
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param index path int true "Invoice index"
// @Param confirm query bool false "Confirm the deletion"
// @Success 200 {object} dto.Response{data=map[string]bool}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{index} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	deleted, err := h.invoiceService.DeleteInvoice(c.Request.Context(), index, confirmerFor(c))
	if err != nil {
		handleServiceError(c, err, "delete invoice")
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": deleted})
}

// deleteInvoices godoc
// @Summary Delete several invoices
// @Description Removes every listed invoice in one batch. Nothing happens unless confirm=true.
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkDeleteInvoicesRequest true "Invoice numbers"
// @Param confirm query bool false "Confirm the deletion"
// @Success 200 {object} dto.Response{data=dto.BulkDeleteInvoicesResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/bulk-delete [post]
func (h *invoiceHandler) deleteInvoices(c *gin.Context) {
	var req dto.BulkDeleteInvoicesRequest
	if !bindJSON(c, &req, "DeleteInvoices") {
		return
	}

	deleted, err := h.invoiceService.DeleteInvoices(c.Request.Context(), req.InvoiceNumbers, confirmerFor(c))
	if err != nil {
		handleServiceError(c, err, "delete invoices")
		return
	}
	respond(c, http.StatusOK, dto.BulkDeleteInvoicesResponse{Deleted: deleted})
}

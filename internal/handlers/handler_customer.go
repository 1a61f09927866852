package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
	"github.com/SscSPs/bukukas_app/internal/dto"
	"github.com/SscSPs/bukukas_app/internal/middleware"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvc
}

func newCustomerHandler(customerService portssvc.CustomerSvc) *customerHandler {
	return &customerHandler{customerService: customerService}
}

func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvc) {
	h := newCustomerHandler(customerService)

	customers := rg.Group("/customers")
	{
		customers.GET("", h.listCustomers)
		customers.POST("", h.createCustomer)
		customers.PUT("/:index", h.updateCustomer)
		customers.DELETE("/:index", h.deleteCustomer)
	}
}

// listCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=[]domain.Customer}
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "list customers")
		return
	}
	respond(c, http.StatusOK, customers)
}

// createCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customer body dto.CustomerRequest true "Customer"
// @Success 201 {object} dto.Response{data=domain.Customer}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CustomerRequest
	if !bindJSON(c, &req, "CreateCustomer") {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "create customer")
		return
	}

	logger.Info("Customer created", slog.String("customer_id", customer.CustomerID))
	respond(c, http.StatusCreated, customer)
}

// updateCustomer godoc
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param index path int true "Customer index"
// @Param customer body dto.CustomerRequest true "Customer"
// @Success 200 {object} dto.Response{data=domain.Customer}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{index} [put]
func (h *customerHandler) updateCustomer(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var req dto.CustomerRequest
	if !bindJSON(c, &req, "UpdateCustomer") {
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), index, req)
	if err != nil {
		handleServiceError(c, err, "update customer")
		return
	}
	respond(c, http.StatusOK, customer)
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Description Nothing happens unless confirm=true.
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param index path int true "Customer index"
// @Param confirm query bool false "Confirm the deletion"
// @Success 200 {object} dto.Response{data=map[string]bool}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{index} [delete]
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	deleted, err := h.customerService.DeleteCustomer(c.Request.Context(), index, confirmerFor(c))
	if err != nil {
		handleServiceError(c, err, "delete customer")
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": deleted})
}

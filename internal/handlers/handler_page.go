package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
)

type pageHandler struct {
	pageService portssvc.PageSvc
}

func registerPageRoutes(rg *gin.RouterGroup, pageService portssvc.PageSvc) {
	h := &pageHandler{pageService: pageService}
	rg.GET("/pages", h.listPages)
	rg.GET("/pages/:page", h.initializePage)
}

// listPages godoc
// @Summary List pages
// @Tags pages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=[]string}
// @Router /pages [get]
func (h *pageHandler) listPages(c *gin.Context) {
	respond(c, http.StatusOK, h.pageService.Pages())
}

// initializePage godoc
// @Summary Initialize a page
// @Description Sweeps orphaned report rows, loads the page data and logs the visit.
// @Tags pages
// @Produce json
// @Security BearerAuth
// @Param page path string true "Page name"
// @Success 200 {object} dto.Response{data=dto.PageResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown page"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Admin only page"
// @Failure 500 {object} dto.ErrorResponse
// @Router /pages/{page} [get]
func (h *pageHandler) initializePage(c *gin.Context) {
	resp, err := h.pageService.InitializePage(c.Request.Context(), c.Param("page"))
	if err != nil {
		handleServiceError(c, err, "initialize page")
		return
	}
	respond(c, http.StatusOK, resp)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
)

type activityHandler struct {
	activityService portssvc.ActivitySvc
}

func registerActivityRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvc) {
	h := &activityHandler{activityService: activityService}
	rg.GET("/activity-logs", h.listActivityLogs)
}

// listActivityLogs godoc
// @Summary List activity logs
// @Description Returns the retained user actions, oldest first.
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=[]domain.ActivityLogEntry}
// @Failure 500 {object} dto.ErrorResponse
// @Router /activity-logs [get]
func (h *activityHandler) listActivityLogs(c *gin.Context) {
	entries, err := h.activityService.ListActivityLogs(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "list activity logs")
		return
	}
	respond(c, http.StatusOK, entries)
}

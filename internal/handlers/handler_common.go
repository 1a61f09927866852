package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	"github.com/SscSPs/bukukas_app/internal/core/services"
	"github.com/SscSPs/bukukas_app/internal/dto"
	"github.com/SscSPs/bukukas_app/internal/middleware"
	"github.com/SscSPs/bukukas_app/internal/notify"
)

// NotificationMiddleware attaches a notify.Collector to every request so that
// responses can carry the messages raised while serving them.
func NotificationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := notify.WithCollector(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// respond writes data wrapped with the request's notifications.
func respond(c *gin.Context, status int, data any) {
	notifications := notify.Items(c.Request.Context())
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	c.JSON(status, dto.Response{Data: data, Notifications: notifications})
}

// respondError writes an ErrorResponse with the request's notifications.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Error: message, Notifications: notify.Items(c.Request.Context())})
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// handleServiceError logs err and writes the mapped response. Internal errors
// are not echoed to the client.
func handleServiceError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		respondError(c, status, "Failed to "+action)
		return
	}
	logger.Warn("Rejected request to "+action, slog.String("error", err.Error()), slog.Int("status", status))
	respondError(c, status, err.Error())
}

// bindJSON binds the request body into req, writing a 400 on failure.
func bindJSON(c *gin.Context, req any, action string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to bind JSON for "+action, slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return false
	}
	return true
}

// indexParam parses the :index path parameter.
func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		respondError(c, http.StatusBadRequest, "Invalid index")
		return 0, false
	}
	return index, true
}

// confirmerFor turns ?confirm=true into a confirmer. Anything else declines.
func confirmerFor(c *gin.Context) services.StaticConfirmer {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	return services.StaticConfirmer(confirmed)
}

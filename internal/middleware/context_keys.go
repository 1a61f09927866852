package middleware

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userCtxKey is the key used to store the authenticated user in the request context.
const userCtxKey = contextKey("sessionUser")

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user domain.SessionUser) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

// GetUserFromCtx retrieves the authenticated user from a standard context.
func GetUserFromCtx(ctx context.Context) (domain.SessionUser, bool) {
	if ctx == nil {
		return domain.SessionUser{}, false
	}
	user, ok := ctx.Value(userCtxKey).(domain.SessionUser)
	if !ok || user.Username == "" {
		return domain.SessionUser{}, false
	}
	return user, true
}

// GetUserFromContext retrieves the authenticated user from the Gin context.
func GetUserFromContext(c *gin.Context) (domain.SessionUser, bool) {
	return GetUserFromCtx(c.Request.Context())
}

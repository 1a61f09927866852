package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
	"github.com/SscSPs/bukukas_app/internal/middleware"
	"github.com/SscSPs/bukukas_app/internal/utils"
)

const testSecret = "middleware-secret"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, user)
	})
	return r
}

func call(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	user := domain.SessionUser{Username: "sari", FullName: "Sari Dewi", Role: domain.RoleStaff}
	token, err := utils.GenerateJWT(user, testSecret, time.Hour, "bukukas-test")
	require.NoError(t, err)

	w := call(newAuthRouter(), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.SessionUser
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, user, got)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	user := domain.SessionUser{Username: "sari", Role: domain.RoleStaff}
	expired, err := utils.GenerateJWT(user, testSecret, -time.Minute, "bukukas-test")
	require.NoError(t, err)
	foreign, err := utils.GenerateJWT(user, "other-secret", time.Hour, "bukukas-test")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantErr string
	}{
		{"missing header", "", "Authorization header required"},
		{"wrong scheme", "Basic abc", "Authorization header format must be Bearer {token}"},
		{"expired", "Bearer " + expired, "Token has expired"},
		{"wrong secret", "Bearer " + foreign, "Invalid token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(newAuthRouter(), tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, tt.wantErr, errorOf(t, w))
		})
	}
}

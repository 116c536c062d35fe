package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"client-portal-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAdminRouter(adminPassword string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AdminAuth(&config.Config{AdminPassword: adminPassword}))
	router.GET("/admin", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func adminRequest(router *gin.Engine, password string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if password != "" {
		req.Header.Set(AdminPasswordHeader, password)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAdminAuth(t *testing.T) {
	t.Run("accepts the configured password", func(t *testing.T) {
		w := adminRequest(newAdminRouter("hunter2"), "hunter2")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		w := adminRequest(newAdminRouter("hunter2"), "guess")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid admin password")
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		w := adminRequest(newAdminRouter("hunter2"), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unconfigured console is unavailable", func(t *testing.T) {
		w := adminRequest(newAdminRouter(""), "anything")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "not configured")
	})
}

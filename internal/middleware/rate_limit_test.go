package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func perform(router *gin.Engine, path string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/ping", middleware.RateLimitByIP(1, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, perform(router, "/ping"))
	assert.Equal(t, http.StatusOK, perform(router, "/ping"))
	// Burst of 2 exhausted; the 1/s refill cannot restore a token yet.
	assert.Equal(t, http.StatusTooManyRequests, perform(router, "/ping"))
}

func TestRateLimitByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("throttles per authenticated user", func(t *testing.T) {
		router := gin.New()
		router.GET("/ping",
			func(c *gin.Context) { c.Set("user_id", "user-a") },
			middleware.RateLimitByUser(1, 1),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)

		assert.Equal(t, http.StatusOK, perform(router, "/ping"))
		assert.Equal(t, http.StatusTooManyRequests, perform(router, "/ping"))
	})

	t.Run("anonymous requests pass through", func(t *testing.T) {
		router := gin.New()
		router.GET("/ping",
			middleware.RateLimitByUser(1, 1),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)

		assert.Equal(t, http.StatusOK, perform(router, "/ping"))
		assert.Equal(t, http.StatusOK, perform(router, "/ping"))
		assert.Equal(t, http.StatusOK, perform(router, "/ping"))
	})
}

func TestRoleMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	routerWithRole := func(role string) *gin.Engine {
		router := gin.New()
		router.GET("/admin",
			func(c *gin.Context) {
				if role != "" {
					c.Set("role", role)
				}
			},
			middleware.RoleMiddleware("manager", "admin"),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		return router
	}

	assert.Equal(t, http.StatusOK, perform(routerWithRole("manager"), "/admin"))
	assert.Equal(t, http.StatusOK, perform(routerWithRole("admin"), "/admin"))
	assert.Equal(t, http.StatusForbidden, perform(routerWithRole("member"), "/admin"))
	assert.Equal(t, http.StatusForbidden, perform(routerWithRole(""), "/admin"))
}

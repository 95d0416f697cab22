package capacity

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	capacity := r.Group("/capacity")
	capacity.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(5, 10))
	{
		capacity.GET("/:userId", handler.GetWindow)
		capacity.POST("/profiles", middleware.RoleMiddleware("manager", "admin"), handler.CreateProfile)
		capacity.POST("/:userId/default", middleware.RoleMiddleware("manager", "admin"), handler.EnsureDefault)
	}
}

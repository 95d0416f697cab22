package snapshot

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	snapshots := r.Group("/workload/snapshots")
	snapshots.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5))
	{
		snapshots.POST("", middleware.RoleMiddleware("manager", "admin"), handler.GenerateTeam)
		snapshots.GET("/:userId", handler.ListByUser)
		snapshots.POST("/:userId", middleware.RoleMiddleware("manager", "admin"), handler.Generate)
	}
}

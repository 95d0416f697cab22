package workload

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	workload := r.Group("/workload")
	workload.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(5, 10))
	{
		workload.GET("/team", handler.GetTeam)
		workload.GET("/:userId", handler.GetUser)
	}
}

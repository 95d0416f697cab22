package recommendation

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	recommendations := r.Group("/recommendations")
	recommendations.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5))
	{
		recommendations.POST("/allocations", handler.Recommend)
	}
}

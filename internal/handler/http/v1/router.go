package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	partes := api.Group("/partes")
	partes.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		partes.POST("/paso1", h.submitStep1)
		partes.POST("/paso2", h.submitStep2)
		partes.GET("/:id", h.getParte)
	}

	api.GET("/system/health", h.healthCheck)
}

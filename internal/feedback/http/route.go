package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers feedback routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/feedback")

	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Submit)
	}
}

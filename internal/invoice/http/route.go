package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers invoice-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/invoices")

	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Issue)
	}
}

package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers guest-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/guests")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)    // List guests
		group.GET("/:id", h.Get) // Get guest with balance and booking history
		group.POST("", h.Create) // Register guest
	}
}

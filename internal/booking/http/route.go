package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)                   // List bookings
		group.GET("/:id", h.Get)                // Get booking details
		group.POST("", h.Create)                // Reserve a room for a guest
		group.POST("/:id/checkout", h.CheckOut) // Finish the stay and free the room
		group.POST("/:id/cancel", h.Cancel)     // Cancel and free the room
	}
}

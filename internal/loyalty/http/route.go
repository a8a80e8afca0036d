package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers a guest's loyalty ledger routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/guests/:id/loyalty")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.Get)            // Get ledger
		group.POST("/earn", h.Earn)     // Credit points
		group.POST("/redeem", h.Redeem) // Spend points, 409 when the balance is short
	}
}

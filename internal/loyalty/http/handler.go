package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/hotel-backend/internal/loyalty"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/request"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/response"
)

type Handler struct {
	service loyalty.Service
}

func NewHandler(service loyalty.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	p, err := h.service.Get(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(p))
}

func (h *Handler) Earn(c *gin.Context) {
	h.apply(c, h.service.Earn)
}

func (h *Handler) Redeem(c *gin.Context) {
	h.apply(c, h.service.Redeem)
}

type pointsFunc func(ctx context.Context, guestID string, points int) (*loyalty.Program, error)

func (h *Handler) apply(c *gin.Context, fn pointsFunc) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	var body PointsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	p, err := fn(c.Request.Context(), uri.ID, body.Points)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(p))
}

package http

import (
	"time"

	"github.com/nekogravitycat/hotel-backend/internal/guest"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/request"
)

type GuestResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Contact       string    `json:"contact"`
	LoyaltyPoints int       `json:"loyalty_points"`
	BookingIDs    []string  `json:"booking_ids"`
	Summary       string    `json:"summary"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewResponse(g *guest.Guest) GuestResponse {
	bookingIDs := g.BookingIDs()
	if bookingIDs == nil {
		bookingIDs = []string{}
	}
	return GuestResponse{
		ID:            g.ID,
		Name:          g.Name,
		Email:         g.Email,
		Contact:       g.Contact,
		LoyaltyPoints: g.LoyaltyPoints(),
		BookingIDs:    bookingIDs,
		Summary:       g.String(),
		CreatedAt:     g.CreatedAt,
	}
}

type ListGuestsRequest struct {
	request.ListParams
	Email string `form:"email"`
	Name  string `form:"name"`
}

type CreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Contact string `json:"contact"`
}

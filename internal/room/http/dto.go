package http

import (
	"time"

	"github.com/nekogravitycat/hotel-backend/internal/pkg/request"
	"github.com/nekogravitycat/hotel-backend/internal/room"
)

type RoomResponse struct {
	ID            string    `json:"id"`
	Number        string    `json:"number"`
	Type          string    `json:"type"`
	Amenities     []string  `json:"amenities"`
	PricePerNight float64   `json:"price_per_night"`
	Available     bool      `json:"available"`
	Summary       string    `json:"summary"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewResponse(r *room.Room) RoomResponse {
	amenities := r.Amenities()
	if amenities == nil {
		amenities = []string{}
	}
	return RoomResponse{
		ID:            r.ID,
		Number:        r.Number,
		Type:          r.Type,
		Amenities:     amenities,
		PricePerNight: r.PricePerNight(),
		Available:     r.IsAvailable(),
		Summary:       r.String(),
		CreatedAt:     r.CreatedAt,
	}
}

type ListRoomsRequest struct {
	request.ListParams
	Type      string `form:"type"`
	Available *bool  `form:"available"`
}

type CreateRequest struct {
	Number        string   `json:"number" binding:"required"`
	Type          string   `json:"type" binding:"required"`
	Amenities     []string `json:"amenities"`
	PricePerNight float64  `json:"price_per_night" binding:"min=0,max=1000000"`
}

type UpdateRequest struct {
	PricePerNight *float64  `json:"price_per_night" binding:"omitempty,min=0,max=1000000"`
	Amenities     *[]string `json:"amenities"`
}

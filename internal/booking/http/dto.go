package http

import (
	"time"

	"github.com/nekogravitycat/hotel-backend/internal/booking"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/request"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	GuestID string `form:"guest_id" binding:"omitempty,uuid"`
	RoomID  string `form:"room_id" binding:"omitempty,uuid"`
	Status  string `form:"status" binding:"omitempty,oneof=active checked_out cancelled"`
}

// GuestTag is the short form of a guest embedded in a booking.
type GuestTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoomTag is the short form of a room embedded in a booking.
type RoomTag struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Type   string `json:"type"`
}

type BookingResponse struct {
	ID           string    `json:"id"`
	Guest        GuestTag  `json:"guest"`
	Room         RoomTag   `json:"room"`
	CheckIn      string    `json:"check_in"`
	CheckOut     string    `json:"check_out"`
	StayDuration int       `json:"stay_duration"`
	Status       string    `json:"status"`
	Summary      string    `json:"summary"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	g, r := b.Guest(), b.Room()
	return BookingResponse{
		ID:           b.ID,
		Guest:        GuestTag{ID: g.ID, Name: g.Name},
		Room:         RoomTag{ID: r.ID, Number: r.Number, Type: r.Type},
		CheckIn:      b.CheckIn.Format(request.DateLayout),
		CheckOut:     b.CheckOut.Format(request.DateLayout),
		StayDuration: b.StayDuration(),
		Status:       string(b.Status()),
		Summary:      b.String(),
		CreatedAt:    b.CreatedAt,
	}
}

type CreateBookingRequest struct {
	GuestID  string `json:"guest_id" binding:"required,uuid"`
	RoomID   string `json:"room_id" binding:"required,uuid"`
	CheckIn  string `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" binding:"required,datetime=2006-01-02"`
}

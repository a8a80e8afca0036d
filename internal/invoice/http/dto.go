package http

import (
	"time"

	"github.com/nekogravitycat/hotel-backend/internal/invoice"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/request"
)

type ListInvoicesRequest struct {
	request.ListParams
	BookingID string `form:"booking_id" binding:"omitempty,uuid"`
}

type InvoiceResponse struct {
	ID                string    `json:"id"`
	BookingID         string    `json:"booking_id"`
	BaseCost          float64   `json:"base_cost"`
	AdditionalCharges float64   `json:"additional_charges"`
	Discount          float64   `json:"discount"`
	Total             float64   `json:"total"`
	Summary           string    `json:"summary"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewResponse reads the totals at call time, so a room price change shows up on the next fetch.
func NewResponse(i *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                i.ID,
		BookingID:         i.Booking().ID,
		BaseCost:          i.BaseCost(),
		AdditionalCharges: i.AdditionalCharges,
		Discount:          i.Discount,
		Total:             i.Total(),
		Summary:           i.String(),
		CreatedAt:         i.CreatedAt,
	}
}

type IssueInvoiceRequest struct {
	BookingID         string  `json:"booking_id" binding:"required,uuid"`
	AdditionalCharges float64 `json:"additional_charges" binding:"min=0,max=1000000000"`
	Discount          float64 `json:"discount" binding:"min=0,max=1000000000"`
}

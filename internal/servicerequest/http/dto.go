package http

import (
	"time"

	"github.com/nekogravitycat/hotel-backend/internal/pkg/request"
	"github.com/nekogravitycat/hotel-backend/internal/servicerequest"
)

type ListServiceRequestsRequest struct {
	request.ListParams
	BookingID string `form:"booking_id" binding:"omitempty,uuid"`
	Status    string `form:"status"`
}

type ServiceRequestResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewResponse(r *servicerequest.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:        r.ID,
		BookingID: r.Booking().ID,
		Type:      r.Type,
		Status:    r.Status(),
		Summary:   r.String(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt(),
	}
}

type CreateServiceRequestRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
	Type      string `json:"type" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

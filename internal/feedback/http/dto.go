package http

import (
	"time"

	"github.com/nekogravitycat/hotel-backend/internal/feedback"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/request"
)

type ListFeedbackRequest struct {
	request.ListParams
	GuestID string `form:"guest_id" binding:"omitempty,uuid"`
}

type FeedbackResponse struct {
	ID        string    `json:"id"`
	GuestID   string    `json:"guest_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResponse(f *feedback.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        f.ID,
		GuestID:   f.Guest().ID,
		Rating:    f.Rating,
		Comment:   f.Comment,
		Summary:   f.String(),
		CreatedAt: f.CreatedAt,
	}
}

// SubmitFeedbackRequest leaves the rating range to the service so the error message stays the same everywhere.
type SubmitFeedbackRequest struct {
	GuestID string `json:"guest_id" binding:"required,uuid"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

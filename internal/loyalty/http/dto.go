package http

import "github.com/nekogravitycat/hotel-backend/internal/loyalty"

type ProgramResponse struct {
	GuestID        string `json:"guest_id"`
	PointsEarned   int    `json:"points_earned"`
	PointsRedeemed int    `json:"points_redeemed"`
	Balance        int    `json:"balance"`
	Summary        string `json:"summary"`
}

func NewResponse(p *loyalty.Program) ProgramResponse {
	return ProgramResponse{
		GuestID:        p.Guest().ID,
		PointsEarned:   p.PointsEarned(),
		PointsRedeemed: p.PointsRedeemed(),
		Balance:        p.Guest().LoyaltyPoints(),
		Summary:        p.String(),
	}
}

type PointsRequest struct {
	Points int `json:"points" binding:"required,gt=0"`
}

package http

import (
	"time"

	"github.com/nekogravitycat/hotel-backend/internal/payment"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/request"
)

type ListPaymentsRequest struct {
	request.ListParams
	InvoiceID string `form:"invoice_id" binding:"omitempty,uuid"`
}

type PaymentResponse struct {
	ID        string    `json:"id"`
	InvoiceID string    `json:"invoice_id"`
	Method    string    `json:"method"`
	PaidOn    string    `json:"paid_on"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		InvoiceID: p.Invoice().ID,
		Method:    p.Method,
		PaidOn:    p.PaidOn.Format(request.DateLayout),
		Summary:   p.String(),
		CreatedAt: p.CreatedAt,
	}
}

type RecordPaymentRequest struct {
	InvoiceID string `json:"invoice_id" binding:"required,uuid"`
	Method    string `json:"method" binding:"required"`
	PaidOn    string `json:"paid_on" binding:"omitempty,datetime=2006-01-02"` // defaults to today
}

package payment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nekogravitycat/hotel-backend/internal/booking"
	"github.com/nekogravitycat/hotel-backend/internal/invoice"
)

type RecordRequest struct {
	InvoiceID string
	Method    string
	PaidOn    time.Time // zero means today
}

type Service interface {
	Record(ctx context.Context, req RecordRequest) (*Payment, error)
	GetByID(ctx context.Context, id string) (*Payment, error)
	List(ctx context.Context, filter Filter) ([]*Payment, int, error)
}

type service struct {
	repo           Repository
	invoiceService invoice.Service
}

func NewService(repo Repository, invoiceService invoice.Service) Service {
	return &service{
		repo:           repo,
		invoiceService: invoiceService,
	}
}

func (s *service) Record(ctx context.Context, req RecordRequest) (*Payment, error) {
	method := strings.TrimSpace(req.Method)
	if method == "" {
		return nil, ErrMethodRequired
	}

	inv, err := s.invoiceService.GetByID(ctx, req.InvoiceID)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	paidOn := req.PaidOn
	if paidOn.IsZero() {
		paidOn = time.Now()
	}

	p := &Payment{
		ID:        uuid.New().String(),
		Method:    method,
		PaidOn:    booking.Date(paidOn),
		CreatedAt: time.Now().UTC(),
		invoice:   inv,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Payment, int, error) {
	return s.repo.List(ctx, filter)
}

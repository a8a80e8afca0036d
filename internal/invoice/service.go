package invoice

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/nekogravitycat/hotel-backend/internal/booking"
)

type IssueRequest struct {
	BookingID         string
	AdditionalCharges float64
	Discount          float64
}

type Service interface {
	Issue(ctx context.Context, req IssueRequest) (*Invoice, error)
	GetByID(ctx context.Context, id string) (*Invoice, error)
	List(ctx context.Context, filter Filter) ([]*Invoice, int, error)
}

type service struct {
	repo           Repository
	bookingService booking.Service
}

func NewService(repo Repository, bookingService booking.Service) Service {
	return &service{
		repo:           repo,
		bookingService: bookingService,
	}
}

func (s *service) Issue(ctx context.Context, req IssueRequest) (*Invoice, error) {
	if req.AdditionalCharges < 0 || req.Discount < 0 {
		return nil, ErrNegativeAmount
	}
	if req.AdditionalCharges > MaxAmount || req.Discount > MaxAmount {
		return nil, ErrAmountTooLarge
	}

	b, err := s.bookingService.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.Status() == booking.StatusCancelled {
		return nil, ErrBookingCancelled
	}

	inv := New(uuid.New().String(), b, req.AdditionalCharges, req.Discount)
	if inv.Discount > inv.BaseCost()+inv.AdditionalCharges {
		return nil, ErrDiscountTooLarge
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Invoice, int, error) {
	return s.repo.List(ctx, filter)
}

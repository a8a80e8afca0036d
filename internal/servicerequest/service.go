package servicerequest

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/nekogravitycat/hotel-backend/internal/booking"
)

type CreateRequest struct {
	BookingID string
	Type      string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*ServiceRequest, error)
	GetByID(ctx context.Context, id string) (*ServiceRequest, error)
	List(ctx context.Context, filter Filter) ([]*ServiceRequest, int, error)
	UpdateStatus(ctx context.Context, id string, status string) (*ServiceRequest, error)
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

func (s *service) Create(ctx context.Context, req CreateRequest) (*ServiceRequest, error) {
	requestType := strings.TrimSpace(req.Type)
	if requestType == "" {
		return nil, ErrTypeRequired
	}

	b, err := s.bookingService.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	sr := New(uuid.New().String(), b, requestType)
	if err := s.repo.Create(ctx, sr); err != nil {
		return nil, err
	}
	return sr, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*ServiceRequest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*ServiceRequest, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status string) (*ServiceRequest, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, ErrStatusRequired
	}

	sr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sr.UpdateStatus(status)
	return sr, nil
}

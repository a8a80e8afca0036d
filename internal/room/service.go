package room

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type CreateRequest struct {
	Number        string
	Type          string
	Amenities     []string
	PricePerNight float64
}

type UpdateRequest struct {
	PricePerNight *float64
	Amenities     *[]string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	number := strings.TrimSpace(req.Number)
	if number == "" {
		return nil, ErrNumberRequired
	}
	roomType := strings.TrimSpace(req.Type)
	if roomType == "" {
		return nil, ErrTypeRequired
	}
	if err := validatePrice(req.PricePerNight); err != nil {
		return nil, err
	}

	r := New(uuid.New().String(), number, roomType, req.Amenities, req.PricePerNight)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

// Update changes price and amenities. A new price is picked up by every
// invoice total computed afterwards, including invoices already issued.
func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PricePerNight != nil {
		if err := validatePrice(*req.PricePerNight); err != nil {
			return nil, err
		}
	}

	if req.PricePerNight != nil {
		r.SetPricePerNight(*req.PricePerNight)
	}
	if req.Amenities != nil {
		r.SetAmenities(*req.Amenities)
	}
	return r, nil
}

func validatePrice(price float64) error {
	switch {
	case price < 0:
		return ErrNegativePrice
	case price > MaxPricePerNight:
		return ErrPriceTooHigh
	}
	return nil
}

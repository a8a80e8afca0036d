package feedback

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nekogravitycat/hotel-backend/internal/guest"
)

type SubmitRequest struct {
	GuestID string
	Rating  int
	Comment string
}

type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Feedback, error)
	GetByID(ctx context.Context, id string) (*Feedback, error)
	List(ctx context.Context, filter Filter) ([]*Feedback, int, error)
}

type service struct {
	repo         Repository
	guestService guest.Service
}

func NewService(repo Repository, guestService guest.Service) Service {
	return &service{
		repo:         repo,
		guestService: guestService,
	}
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*Feedback, error) {
	if req.Rating < MinRating || req.Rating > MaxRating {
		return nil, ErrInvalidRating
	}

	g, err := s.guestService.GetByID(ctx, req.GuestID)
	if err != nil {
		if errors.Is(err, guest.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}

	f := &Feedback{
		ID:        uuid.New().String(),
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
		CreatedAt: time.Now().UTC(),
		guest:     g,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Feedback, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Feedback, int, error) {
	return s.repo.List(ctx, filter)
}

package loyalty

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/nekogravitycat/hotel-backend/internal/guest"
)

type Service interface {
	Get(ctx context.Context, guestID string) (*Program, error)
	Earn(ctx context.Context, guestID string, points int) (*Program, error)
	Redeem(ctx context.Context, guestID string, points int) (*Program, error)
}

type service struct {
	repo         Repository
	guestService guest.Service
	logger       *zap.Logger
}

func NewService(repo Repository, guestService guest.Service, logger *zap.Logger) Service {
	return &service{
		repo:         repo,
		guestService: guestService,
		logger:       logger,
	}
}

func (s *service) Get(ctx context.Context, guestID string) (*Program, error) {
	g, err := s.guestService.GetByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, guest.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return s.repo.GetOrCreate(ctx, g)
}

func (s *service) Earn(ctx context.Context, guestID string, points int) (*Program, error) {
	p, err := s.Get(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if err := p.Earn(points); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Redeem(ctx context.Context, guestID string, points int) (*Program, error) {
	p, err := s.Get(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if err := p.Redeem(points); err != nil {
		if errors.Is(err, ErrInsufficientPoints) {
			s.logger.Info("loyalty redemption refused",
				zap.String("guest_id", guestID),
				zap.Int("requested", points),
				zap.Int("balance", p.guest.LoyaltyPoints()),
			)
		}
		return nil, err
	}
	return p, nil
}

package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nekogravitycat/hotel-backend/internal/guest"
	"github.com/nekogravitycat/hotel-backend/internal/room"
)

type CreateRequest struct {
	GuestID  string
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	CheckOut(ctx context.Context, id string) (*Booking, error)
	Cancel(ctx context.Context, id string) (*Booking, error)
}

type service struct {
	repo         Repository
	guestService guest.Service
	roomService  room.Service
	logger       *zap.Logger
}

func NewService(repo Repository, guestService guest.Service, roomService room.Service, logger *zap.Logger) Service {
	return &service{
		repo:         repo,
		guestService: guestService,
		roomService:  roomService,
		logger:       logger,
	}
}

// Create books a room for a guest. On success the room is marked unavailable
// and the booking is appended to the guest's history; on any failure neither
// has changed.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// 1. Validate Date Range (same day is a zero-night stay)
	checkIn, checkOut := Date(req.CheckIn), Date(req.CheckOut)
	if checkOut.Before(checkIn) {
		return nil, ErrInvalidDateRange
	}

	// 2. Resolve Guest and Room
	g, err := s.guestService.GetByID(ctx, req.GuestID)
	if err != nil {
		if errors.Is(err, guest.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	r, err := s.roomService.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	// 3. Take the Room
	if err := r.Reserve(); err != nil {
		if errors.Is(err, room.ErrUnavailable) {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}

	// 4. Record Booking
	b := New(uuid.New().String(), g, r, checkIn, checkOut)
	g.AddBooking(b.ID)

	if err := s.repo.Create(ctx, b); err != nil {
		g.RemoveBooking(b.ID)
		r.Release()
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("booking_id", b.ID),
		zap.String("guest_id", g.ID),
		zap.String("room_number", r.Number),
		zap.Int("nights", b.StayDuration()),
	)
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}

// CheckOut ends an active stay and frees the room. The booking stays in the guest's history.
func (s *service) CheckOut(ctx context.Context, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := b.finish(StatusCheckedOut); err != nil {
		return nil, err
	}
	b.room.Release()

	s.logger.Info("booking checked out", zap.String("booking_id", b.ID), zap.String("room_number", b.room.Number))
	return b, nil
}

// Cancel withdraws an active booking: the room is freed and the booking is
// removed from the guest's history, undoing Create.
func (s *service) Cancel(ctx context.Context, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := b.finish(StatusCancelled); err != nil {
		return nil, err
	}
	b.room.Release()
	b.guest.RemoveBooking(b.ID)

	s.logger.Info("booking cancelled", zap.String("booking_id", b.ID), zap.String("room_number", b.room.Number))
	return b, nil
}

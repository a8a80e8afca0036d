package booking

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/nekogravitycat/hotel-backend/internal/guest"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/hotel-backend/internal/room"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "check-out date cannot be before check-in date")
	ErrGuestNotFound    = apperror.New(http.StatusNotFound, "guest not found")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room not found")
	ErrRoomUnavailable  = apperror.New(http.StatusConflict, "room is not available")
	ErrNotActive        = apperror.New(http.StatusConflict, "booking is no longer active")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid booking status")
)

type Status string

const (
	StatusActive     Status = "active"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}

// Booking binds a guest to a room between two calendar dates.
// Guest and room are shared with the rest of the system, not owned.
type Booking struct {
	ID        string
	CheckIn   time.Time // UTC midnight
	CheckOut  time.Time // UTC midnight
	CreatedAt time.Time

	guest *guest.Guest
	room  *room.Room

	mu     sync.RWMutex
	status Status
}

// New builds an active booking. It has no side effects on g or r;
// Service.Create is what reserves the room and records the history.
func New(id string, g *guest.Guest, r *room.Room, checkIn, checkOut time.Time) *Booking {
	return &Booking{
		ID:        id,
		CheckIn:   Date(checkIn),
		CheckOut:  Date(checkOut),
		CreatedAt: time.Now().UTC(),
		guest:     g,
		room:      r,
		status:    StatusActive,
	}
}

func (b *Booking) Guest() *guest.Guest { return b.guest }

func (b *Booking) Room() *room.Room { return b.room }

func (b *Booking) Status() Status {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status
}

// StayDuration is the number of whole nights between check-in and check-out.
// Both dates are UTC midnight, so the day count is exact for any calendar range.
func (b *Booking) StayDuration() int {
	return int((b.CheckOut.Unix() - b.CheckIn.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// finish moves an active booking to a terminal status.
func (b *Booking) finish(to Status) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status != StatusActive {
		return ErrNotActive
	}
	b.status = to
	return nil
}

func (b *Booking) String() string {
	return fmt.Sprintf("Booking %s for %s in Room %s from %s to %s",
		b.ID, b.guest.Name, b.room.Number,
		b.CheckIn.Format(time.DateOnly), b.CheckOut.Format(time.DateOnly))
}

// Date truncates t to midnight UTC of its calendar day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Filter struct {
	GuestID  string
	RoomID   string
	Status   Status
	Page     int
	PageSize int
}

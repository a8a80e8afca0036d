package room

import (
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
)

// MaxPricePerNight bounds the nightly rate so invoice totals stay finite.
const MaxPricePerNight = 1_000_000

var (
	ErrNotFound       = apperror.New(http.StatusNotFound, "room not found")
	ErrNumberRequired = apperror.New(http.StatusBadRequest, "room number is required")
	ErrTypeRequired   = apperror.New(http.StatusBadRequest, "room type is required")
	ErrNegativePrice  = apperror.New(http.StatusBadRequest, "price per night cannot be negative")
	ErrPriceTooHigh   = apperror.New(http.StatusBadRequest, fmt.Sprintf("price per night cannot exceed %d", MaxPricePerNight))
	ErrNumberTaken    = apperror.New(http.StatusConflict, "room number already exists")
	ErrUnavailable    = apperror.New(http.StatusConflict, "room is not available")
)

// Room is a bookable hotel room.
// Number and Type are fixed at creation; price, amenities and availability
// change over time and are only reachable through the methods below.
type Room struct {
	ID        string
	Number    string
	Type      string
	CreatedAt time.Time

	mu            sync.RWMutex
	amenities     []string
	pricePerNight float64
	available     bool
}

// New returns an available room.
func New(id, number, roomType string, amenities []string, pricePerNight float64) *Room {
	return &Room{
		ID:            id,
		Number:        number,
		Type:          roomType,
		CreatedAt:     time.Now().UTC(),
		amenities:     slices.Clone(amenities),
		pricePerNight: pricePerNight,
		available:     true,
	}
}

func (r *Room) PricePerNight() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pricePerNight
}

func (r *Room) SetPricePerNight(price float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pricePerNight = price
}

// Amenities returns a copy of the amenity list in its original order.
func (r *Room) Amenities() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.amenities)
}

func (r *Room) SetAmenities(amenities []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.amenities = slices.Clone(amenities)
}

func (r *Room) IsAvailable() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.available
}

func (r *Room) SetAvailability(available bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.available = available
}

// Reserve marks the room as taken in a single check-and-set.
// It returns ErrUnavailable if the room was already taken.
func (r *Room) Reserve() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.available {
		return ErrUnavailable
	}
	r.available = false
	return nil
}

// Release makes the room available again.
func (r *Room) Release() {
	r.SetAvailability(true)
}

func (r *Room) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state := "Available"
	if !r.available {
		state = "Booked"
	}
	return fmt.Sprintf("Room %s (%s) - $%.2f/night - %s", r.Number, r.Type, r.pricePerNight, state)
}

// Filter defines parameters for listing rooms.
type Filter struct {
	Type      string
	Available *bool // nil means any
	Page      int
	PageSize  int
}

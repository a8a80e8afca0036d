package guest

import (
	"fmt"
	"math"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "guest not found")
	ErrNameRequired  = apperror.New(http.StatusBadRequest, "name is required")
	ErrEmailRequired = apperror.New(http.StatusBadRequest, "email is required")
	ErrEmailTaken    = apperror.New(http.StatusConflict, "email already used")
)

// Guest is a hotel guest with a loyalty point balance and a booking history.
type Guest struct {
	ID        string
	Name      string
	Email     string
	Contact   string
	CreatedAt time.Time

	mu            sync.RWMutex
	loyaltyPoints int
	bookingIDs    []string
}

func New(id, name, email, contact string) *Guest {
	return &Guest{
		ID:        id,
		Name:      name,
		Email:     email,
		Contact:   contact,
		CreatedAt: time.Now().UTC(),
	}
}

// AddBooking appends a booking to the guest's history. There is no duplicate
// check: a guest may hold several bookings at once.
func (g *Guest) AddBooking(bookingID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.bookingIDs = append(g.bookingIDs, bookingID)
}

// RemoveBooking drops a booking from the history and reports whether it was there.
// Used when a booking is cancelled or its creation is rolled back.
func (g *Guest) RemoveBooking(bookingID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := slices.Index(g.bookingIDs, bookingID)
	if i < 0 {
		return false
	}
	g.bookingIDs = slices.Delete(g.bookingIDs, i, i+1)
	return true
}

// BookingIDs returns a copy of the booking history, oldest first.
func (g *Guest) BookingIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.bookingIDs)
}

// AddPoints credits n points and reports whether it did. Non-positive amounts
// and credits that would overflow the balance are refused.
func (g *Guest) AddPoints(n int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n <= 0 || g.loyaltyPoints > math.MaxInt-n {
		return false
	}
	g.loyaltyPoints += n
	return true
}

// SpendPoints deducts n only if the balance covers it, and reports whether it did.
func (g *Guest) SpendPoints(n int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n > g.loyaltyPoints {
		return false
	}
	g.loyaltyPoints -= n
	return true
}

func (g *Guest) LoyaltyPoints() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.loyaltyPoints
}

func (g *Guest) String() string {
	return fmt.Sprintf("Guest: %s, Email: %s, Loyalty Points: %d", g.Name, g.Email, g.LoyaltyPoints())
}

// Filter defines parameters for listing guests.
type Filter struct {
	Email    string
	Name     string // case-insensitive substring
	Page     int
	PageSize int
}

package servicerequest

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/nekogravitycat/hotel-backend/internal/booking"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "service request not found")
	ErrBookingNotFound = apperror.New(http.StatusNotFound, "booking not found")
	ErrTypeRequired    = apperror.New(http.StatusBadRequest, "request type is required")
	ErrStatusRequired  = apperror.New(http.StatusBadRequest, "status is required")
)

// StatusPending is the status every request starts in. Later statuses are free text.
const StatusPending = "Pending"

// ServiceRequest is a guest request (cleaning, towels, ...) raised against a booking.
type ServiceRequest struct {
	ID        string
	Type      string
	CreatedAt time.Time

	booking *booking.Booking

	mu        sync.RWMutex
	status    string
	updatedAt time.Time
}

func New(id string, b *booking.Booking, requestType string) *ServiceRequest {
	now := time.Now().UTC()
	return &ServiceRequest{
		ID:        id,
		Type:      requestType,
		CreatedAt: now,
		booking:   b,
		status:    StatusPending,
		updatedAt: now,
	}
}

func (r *ServiceRequest) Booking() *booking.Booking { return r.booking }

func (r *ServiceRequest) Status() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

func (r *ServiceRequest) UpdatedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.updatedAt
}

// UpdateStatus overwrites the status. There is no transition table.
func (r *ServiceRequest) UpdateStatus(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = status
	r.updatedAt = time.Now().UTC()
}

func (r *ServiceRequest) String() string {
	return fmt.Sprintf("Service Request %s for %s - Status: %s", r.ID, r.Type, r.Status())
}

type Filter struct {
	BookingID string
	Status    string
	Page      int
	PageSize  int
}

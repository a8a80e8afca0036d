package invoice

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nekogravitycat/hotel-backend/internal/booking"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
)

// MaxAmount bounds additional charges and discount so totals stay finite.
const MaxAmount = 1_000_000_000

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "invoice not found")
	ErrBookingNotFound  = apperror.New(http.StatusNotFound, "booking not found")
	ErrBookingCancelled = apperror.New(http.StatusConflict, "cannot invoice a cancelled booking")
	ErrNegativeAmount   = apperror.New(http.StatusBadRequest, "charges and discount cannot be negative")
	ErrDiscountTooLarge = apperror.New(http.StatusBadRequest, "discount exceeds the invoice amount")
	ErrAmountTooLarge   = apperror.New(http.StatusBadRequest, fmt.Sprintf("charges and discount cannot exceed %d", MaxAmount))
)

// Invoice bills a booking. Its total is never stored: every call to Total
// reads the booked room's current price.
type Invoice struct {
	ID                string
	AdditionalCharges float64
	Discount          float64
	CreatedAt         time.Time

	booking *booking.Booking
}

func New(id string, b *booking.Booking, additionalCharges, discount float64) *Invoice {
	return &Invoice{
		ID:                id,
		AdditionalCharges: additionalCharges,
		Discount:          discount,
		CreatedAt:         time.Now().UTC(),
		booking:           b,
	}
}

func (i *Invoice) Booking() *booking.Booking { return i.booking }

// BaseCost is nights times the room's current nightly price.
func (i *Invoice) BaseCost() float64 {
	return float64(i.booking.StayDuration()) * i.booking.Room().PricePerNight()
}

// Total is base cost plus charges minus discount, floored at zero.
// The floor only matters when the room price drops after the invoice was issued.
func (i *Invoice) Total() float64 {
	return max(i.BaseCost()+i.AdditionalCharges-i.Discount, 0)
}

func (i *Invoice) String() string {
	return fmt.Sprintf("Invoice %s: Total - $%.2f", i.ID, i.Total())
}

type Filter struct {
	BookingID string
	Page      int
	PageSize  int
}

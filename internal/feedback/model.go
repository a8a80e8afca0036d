package feedback

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nekogravitycat/hotel-backend/internal/guest"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "feedback not found")
	ErrGuestNotFound = apperror.New(http.StatusNotFound, "guest not found")
	ErrInvalidRating = apperror.New(http.StatusBadRequest, fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating))
)

// Feedback is a guest's rating and comment. It never changes after submission.
type Feedback struct {
	ID        string
	Rating    int
	Comment   string
	CreatedAt time.Time

	guest *guest.Guest
}

func (f *Feedback) Guest() *guest.Guest { return f.guest }

func (f *Feedback) String() string {
	return fmt.Sprintf("Feedback from %s: %d/%d - %s", f.guest.Name, f.Rating, MaxRating, f.Comment)
}

type Filter struct {
	GuestID  string
	Page     int
	PageSize int
}

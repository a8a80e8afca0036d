package booking

import (
	"context"
	"net/http"

	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/memstore"
)

type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
}

type memRepository struct {
	store *memstore.Store[*Booking]
}

func NewMemRepository() Repository {
	return &memRepository{store: memstore.New[*Booking]()}
}

func (r *memRepository) Create(ctx context.Context, b *Booking) error {
	if err := r.store.Insert(b.ID, b); err != nil {
		return apperror.Wrap(err, http.StatusInternalServerError, "create booking failed")
	}
	return nil
}

func (r *memRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	b, ok := r.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return b, nil
}

func (r *memRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	matches := r.store.Filter(func(b *Booking) bool {
		if filter.GuestID != "" && b.guest.ID != filter.GuestID {
			return false
		}
		if filter.RoomID != "" && b.room.ID != filter.RoomID {
			return false
		}
		if filter.Status != "" && b.Status() != filter.Status {
			return false
		}
		return true
	})

	page, total := memstore.Paginate(matches, filter.Page, filter.PageSize)
	return page, total, nil
}

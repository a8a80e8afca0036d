package invoice

import (
	"context"
	"net/http"

	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/memstore"
)

type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	GetByID(ctx context.Context, id string) (*Invoice, error)
	List(ctx context.Context, filter Filter) ([]*Invoice, int, error)
}

type memRepository struct {
	store *memstore.Store[*Invoice]
}

func NewMemRepository() Repository {
	return &memRepository{store: memstore.New[*Invoice]()}
}

func (r *memRepository) Create(ctx context.Context, inv *Invoice) error {
	if err := r.store.Insert(inv.ID, inv); err != nil {
		return apperror.Wrap(err, http.StatusInternalServerError, "create invoice failed")
	}
	return nil
}

func (r *memRepository) GetByID(ctx context.Context, id string) (*Invoice, error) {
	inv, ok := r.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return inv, nil
}

func (r *memRepository) List(ctx context.Context, filter Filter) ([]*Invoice, int, error) {
	matches := r.store.Filter(func(inv *Invoice) bool {
		return filter.BookingID == "" || inv.booking.ID == filter.BookingID
	})

	page, total := memstore.Paginate(matches, filter.Page, filter.PageSize)
	return page, total, nil
}

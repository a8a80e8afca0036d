package feedback

import (
	"context"
	"net/http"

	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/memstore"
)

type Repository interface {
	Create(ctx context.Context, f *Feedback) error
	GetByID(ctx context.Context, id string) (*Feedback, error)
	List(ctx context.Context, filter Filter) ([]*Feedback, int, error)
}

type memRepository struct {
	store *memstore.Store[*Feedback]
}

func NewMemRepository() Repository {
	return &memRepository{store: memstore.New[*Feedback]()}
}

func (r *memRepository) Create(ctx context.Context, f *Feedback) error {
	if err := r.store.Insert(f.ID, f); err != nil {
		return apperror.Wrap(err, http.StatusInternalServerError, "create feedback failed")
	}
	return nil
}

func (r *memRepository) GetByID(ctx context.Context, id string) (*Feedback, error) {
	f, ok := r.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return f, nil
}

func (r *memRepository) List(ctx context.Context, filter Filter) ([]*Feedback, int, error) {
	matches := r.store.Filter(func(f *Feedback) bool {
		return filter.GuestID == "" || f.guest.ID == filter.GuestID
	})

	page, total := memstore.Paginate(matches, filter.Page, filter.PageSize)
	return page, total, nil
}

package payment

import (
	"context"
	"net/http"

	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/memstore"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id string) (*Payment, error)
	List(ctx context.Context, filter Filter) ([]*Payment, int, error)
}

type memRepository struct {
	store *memstore.Store[*Payment]
}

func NewMemRepository() Repository {
	return &memRepository{store: memstore.New[*Payment]()}
}

func (r *memRepository) Create(ctx context.Context, p *Payment) error {
	if err := r.store.Insert(p.ID, p); err != nil {
		return apperror.Wrap(err, http.StatusInternalServerError, "create payment failed")
	}
	return nil
}

func (r *memRepository) GetByID(ctx context.Context, id string) (*Payment, error) {
	p, ok := r.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (r *memRepository) List(ctx context.Context, filter Filter) ([]*Payment, int, error) {
	matches := r.store.Filter(func(p *Payment) bool {
		return filter.InvoiceID == "" || p.invoice.ID == filter.InvoiceID
	})

	page, total := memstore.Paginate(matches, filter.Page, filter.PageSize)
	return page, total, nil
}

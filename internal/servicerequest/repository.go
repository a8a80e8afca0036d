package servicerequest

import (
	"context"
	"net/http"
	"strings"

	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/memstore"
)

type Repository interface {
	Create(ctx context.Context, r *ServiceRequest) error
	GetByID(ctx context.Context, id string) (*ServiceRequest, error)
	List(ctx context.Context, filter Filter) ([]*ServiceRequest, int, error)
}

type memRepository struct {
	store *memstore.Store[*ServiceRequest]
}

func NewMemRepository() Repository {
	return &memRepository{store: memstore.New[*ServiceRequest]()}
}

func (r *memRepository) Create(ctx context.Context, req *ServiceRequest) error {
	if err := r.store.Insert(req.ID, req); err != nil {
		return apperror.Wrap(err, http.StatusInternalServerError, "create service request failed")
	}
	return nil
}

func (r *memRepository) GetByID(ctx context.Context, id string) (*ServiceRequest, error) {
	req, ok := r.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return req, nil
}

func (r *memRepository) List(ctx context.Context, filter Filter) ([]*ServiceRequest, int, error) {
	matches := r.store.Filter(func(req *ServiceRequest) bool {
		if filter.BookingID != "" && req.booking.ID != filter.BookingID {
			return false
		}
		if filter.Status != "" && !strings.EqualFold(req.Status(), filter.Status) {
			return false
		}
		return true
	})

	page, total := memstore.Paginate(matches, filter.Page, filter.PageSize)
	return page, total, nil
}

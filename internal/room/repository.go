package room

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/memstore"
)

type Repository interface {
	Create(ctx context.Context, r *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	GetByNumber(ctx context.Context, number string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
}

type memRepository struct {
	// createMu makes the number uniqueness check and the insert one step.
	createMu sync.Mutex
	store    *memstore.Store[*Room]
}

func NewMemRepository() Repository {
	return &memRepository{store: memstore.New[*Room]()}
}

func (r *memRepository) Create(ctx context.Context, room *Room) error {
	r.createMu.Lock()
	defer r.createMu.Unlock()

	if _, err := r.GetByNumber(ctx, room.Number); err == nil {
		return ErrNumberTaken
	}
	if err := r.store.Insert(room.ID, room); err != nil {
		return apperror.Wrap(err, http.StatusInternalServerError, "create room failed")
	}
	return nil
}

func (r *memRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	room, ok := r.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return room, nil
}

func (r *memRepository) GetByNumber(ctx context.Context, number string) (*Room, error) {
	room, ok := r.store.Find(sameNumber(number))
	if !ok {
		return nil, ErrNotFound
	}
	return room, nil
}

func (r *memRepository) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	matches := r.store.Filter(func(room *Room) bool {
		if filter.Type != "" && !strings.EqualFold(room.Type, filter.Type) {
			return false
		}
		if filter.Available != nil && room.IsAvailable() != *filter.Available {
			return false
		}
		return true
	})

	page, total := memstore.Paginate(matches, filter.Page, filter.PageSize)
	return page, total, nil
}

func sameNumber(number string) func(*Room) bool {
	return func(room *Room) bool {
		return strings.EqualFold(room.Number, number)
	}
}

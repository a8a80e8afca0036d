package guest

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/memstore"
)

type Repository interface {
	Create(ctx context.Context, g *Guest) error
	GetByID(ctx context.Context, id string) (*Guest, error)
	GetByEmail(ctx context.Context, email string) (*Guest, error)
	List(ctx context.Context, filter Filter) ([]*Guest, int, error)
}

type memRepository struct {
	createMu sync.Mutex
	store    *memstore.Store[*Guest]
}

func NewMemRepository() Repository {
	return &memRepository{store: memstore.New[*Guest]()}
}

func (r *memRepository) Create(ctx context.Context, g *Guest) error {
	r.createMu.Lock()
	defer r.createMu.Unlock()

	if _, err := r.GetByEmail(ctx, g.Email); err == nil {
		return ErrEmailTaken
	}
	if err := r.store.Insert(g.ID, g); err != nil {
		return apperror.Wrap(err, http.StatusInternalServerError, "create guest failed")
	}
	return nil
}

func (r *memRepository) GetByID(ctx context.Context, id string) (*Guest, error) {
	g, ok := r.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

func (r *memRepository) GetByEmail(ctx context.Context, email string) (*Guest, error) {
	g, ok := r.store.Find(sameEmail(email))
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

func (r *memRepository) List(ctx context.Context, filter Filter) ([]*Guest, int, error) {
	name := strings.ToLower(strings.TrimSpace(filter.Name))
	email := normalizeEmail(filter.Email)

	matches := r.store.Filter(func(g *Guest) bool {
		if email != "" && g.Email != email {
			return false
		}
		if name != "" && !strings.Contains(strings.ToLower(g.Name), name) {
			return false
		}
		return true
	})

	page, total := memstore.Paginate(matches, filter.Page, filter.PageSize)
	return page, total, nil
}

func sameEmail(email string) func(*Guest) bool {
	email = normalizeEmail(email)
	return func(g *Guest) bool {
		return g.Email == email
	}
}

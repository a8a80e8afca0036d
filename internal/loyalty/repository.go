package loyalty

import (
	"context"
	"net/http"
	"sync"

	"github.com/nekogravitycat/hotel-backend/internal/guest"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/memstore"
)

// Repository stores one program per guest, keyed by guest id.
type Repository interface {
	// GetOrCreate returns the guest's program, enrolling the guest on first use.
	GetOrCreate(ctx context.Context, g *guest.Guest) (*Program, error)
}

type memRepository struct {
	mu    sync.Mutex
	store *memstore.Store[*Program]
}

func NewMemRepository() Repository {
	return &memRepository{store: memstore.New[*Program]()}
}

func (r *memRepository) GetOrCreate(ctx context.Context, g *guest.Guest) (*Program, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.store.Get(g.ID); ok {
		return p, nil
	}

	p := NewProgram(g)
	if err := r.store.Insert(g.ID, p); err != nil {
		return nil, apperror.Wrap(err, http.StatusInternalServerError, "enroll guest failed")
	}
	return p, nil
}

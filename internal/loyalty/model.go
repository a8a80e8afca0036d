package loyalty

import (
	"fmt"
	"math"
	"net/http"
	"sync"

	"github.com/nekogravitycat/hotel-backend/internal/guest"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
)

var (
	ErrGuestNotFound      = apperror.New(http.StatusNotFound, "guest not found")
	ErrInvalidPoints      = apperror.New(http.StatusBadRequest, "points must be a positive number")
	ErrInsufficientPoints = apperror.New(http.StatusConflict, "not enough loyalty points")
	ErrPointsOverflow     = apperror.New(http.StatusBadRequest, "points would exceed the maximum balance")
)

// Program is a guest's loyalty ledger. The earned and redeemed counters only
// grow; the spendable balance lives on the guest and moves with them.
type Program struct {
	guest *guest.Guest

	mu             sync.Mutex
	pointsEarned   int
	pointsRedeemed int
}

func NewProgram(g *guest.Guest) *Program {
	return &Program{guest: g}
}

func (p *Program) Guest() *guest.Guest { return p.guest }

// Earn credits n points to the ledger and the guest's balance.
func (p *Program) Earn(n int) error {
	if n <= 0 {
		return ErrInvalidPoints
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pointsEarned > math.MaxInt-n || !p.guest.AddPoints(n) {
		return ErrPointsOverflow
	}
	p.pointsEarned += n
	return nil
}

// Redeem spends n points. If the guest's balance is below n nothing changes
// and ErrInsufficientPoints is returned.
func (p *Program) Redeem(n int) error {
	if n <= 0 {
		return ErrInvalidPoints
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.guest.SpendPoints(n) {
		return ErrInsufficientPoints
	}
	p.pointsRedeemed += n
	return nil
}

func (p *Program) PointsEarned() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pointsEarned
}

func (p *Program) PointsRedeemed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pointsRedeemed
}

func (p *Program) String() string {
	return fmt.Sprintf("Loyalty Program for %s - Earned: %d, Redeemed: %d",
		p.guest.Name, p.PointsEarned(), p.PointsRedeemed())
}

package guest

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGuest(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemRepository())

	g, err := svc.Create(ctx, CreateRequest{Name: " Alice ", Email: " Alice@Example.com ", Contact: "555-0100"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", g.Name)
	assert.Equal(t, "alice@example.com", g.Email)
	assert.Equal(t, 0, g.LoyaltyPoints())
	assert.Empty(t, g.BookingIDs())

	_, err = svc.Create(ctx, CreateRequest{Name: "Other", Email: "ALICE@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Create(ctx, CreateRequest{Email: "x@example.com"})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(ctx, CreateRequest{Name: "Bob"})
	assert.ErrorIs(t, err, ErrEmailRequired)

	got, err := svc.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingHistory(t *testing.T) {
	g := New("g1", "Alice", "alice@example.com", "")

	g.AddBooking("b1")
	g.AddBooking("b2")
	g.AddBooking("b1")
	assert.Equal(t, []string{"b1", "b2", "b1"}, g.BookingIDs())

	assert.True(t, g.RemoveBooking("b2"))
	assert.False(t, g.RemoveBooking("b9"))
	assert.Equal(t, []string{"b1", "b1"}, g.BookingIDs())
}

func TestPoints(t *testing.T) {
	g := New("g1", "Alice", "alice@example.com", "")

	g.AddPoints(50)
	assert.True(t, g.SpendPoints(30))
	assert.Equal(t, 20, g.LoyaltyPoints())

	assert.False(t, g.SpendPoints(21))
	assert.Equal(t, 20, g.LoyaltyPoints())

	assert.False(t, g.AddPoints(0))
	assert.False(t, g.AddPoints(-25))
	assert.Equal(t, 20, g.LoyaltyPoints())
}

func TestAddPointsOverflow(t *testing.T) {
	g := New("g1", "Alice", "alice@example.com", "")

	require.True(t, g.AddPoints(math.MaxInt))
	assert.False(t, g.AddPoints(1))
	assert.Equal(t, math.MaxInt, g.LoyaltyPoints())
}

func TestSpendPointsIsAtomic(t *testing.T) {
	g := New("g1", "Alice", "alice@example.com", "")
	g.AddPoints(100)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.SpendPoints(10)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, g.LoyaltyPoints())
}

func TestGuestString(t *testing.T) {
	g := New("g1", "Alice", "alice@example.com", "")
	g.AddPoints(10)
	assert.Equal(t, "Guest: Alice, Email: alice@example.com, Loyalty Points: 10", g.String())
}

func TestListGuests(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemRepository())

	for _, req := range []CreateRequest{
		{Name: "Alice Smith", Email: "alice@example.com"},
		{Name: "Bob Smith", Email: "bob@example.com"},
		{Name: "Carol", Email: "carol@example.com"},
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	guests, total, err := svc.List(ctx, Filter{Name: "smith"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, guests, 2)

	guests, total, err = svc.List(ctx, Filter{Email: "CAROL@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Carol", guests[0].Name)
}

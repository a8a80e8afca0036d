package room

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewService(NewMemRepository())
}

func TestCreateRoom(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	t.Run("Success", func(t *testing.T) {
		r, err := svc.Create(ctx, CreateRequest{
			Number:        "101",
			Type:          "Deluxe",
			Amenities:     []string{"WiFi", "Minibar"},
			PricePerNight: 120,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, r.ID)
		assert.True(t, r.IsAvailable())
		assert.Equal(t, 120.0, r.PricePerNight())
		assert.Equal(t, []string{"WiFi", "Minibar"}, r.Amenities())
	})

	t.Run("Validation", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Number: "  ", Type: "Single"})
		assert.ErrorIs(t, err, ErrNumberRequired)

		_, err = svc.Create(ctx, CreateRequest{Number: "102"})
		assert.ErrorIs(t, err, ErrTypeRequired)

		_, err = svc.Create(ctx, CreateRequest{Number: "102", Type: "Single", PricePerNight: -1})
		assert.ErrorIs(t, err, ErrNegativePrice)

		_, err = svc.Create(ctx, CreateRequest{Number: "102", Type: "Single", PricePerNight: 1e308})
		assert.ErrorIs(t, err, ErrPriceTooHigh)

		_, err = svc.Create(ctx, CreateRequest{Number: "102", Type: "Single", PricePerNight: MaxPricePerNight})
		assert.NoError(t, err)
	})

	t.Run("Duplicate Number", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Number: "101", Type: "Single", PricePerNight: 80})
		assert.ErrorIs(t, err, ErrNumberTaken)
	})
}

func TestAmenitiesAreCopied(t *testing.T) {
	amenities := []string{"WiFi"}
	r := New("id", "201", "Single", amenities, 50)

	amenities[0] = "changed"
	assert.Equal(t, []string{"WiFi"}, r.Amenities())

	got := r.Amenities()
	got[0] = "changed"
	assert.Equal(t, []string{"WiFi"}, r.Amenities())
}

func TestReserveRelease(t *testing.T) {
	r := New("id", "301", "Suite", nil, 300)

	require.NoError(t, r.Reserve())
	assert.False(t, r.IsAvailable())
	assert.ErrorIs(t, r.Reserve(), ErrUnavailable)

	r.Release()
	assert.True(t, r.IsAvailable())
}

func TestReserveIsExclusive(t *testing.T) {
	r := New("id", "302", "Suite", nil, 300)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.Reserve() == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestRoomString(t *testing.T) {
	r := New("id", "101", "Deluxe", nil, 120)
	assert.Equal(t, "Room 101 (Deluxe) - $120.00/night - Available", r.String())

	r.SetAvailability(false)
	assert.Equal(t, "Room 101 (Deluxe) - $120.00/night - Booked", r.String())
}

func TestListRooms(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	single, err := svc.Create(ctx, CreateRequest{Number: "1", Type: "Single", PricePerNight: 50})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{Number: "2", Type: "Double", PricePerNight: 70})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{Number: "3", Type: "single", PricePerNight: 55})
	require.NoError(t, err)

	require.NoError(t, single.Reserve())

	rooms, total, err := svc.List(ctx, Filter{Type: "Single"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, rooms, 2)

	available := true
	rooms, total, err = svc.List(ctx, Filter{Available: &available})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, r := range rooms {
		assert.NotEqual(t, single.ID, r.ID)
	}

	rooms, total, err = svc.List(ctx, Filter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, rooms, 1)
}

func TestUpdateRoom(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	r, err := svc.Create(ctx, CreateRequest{Number: "401", Type: "Double", PricePerNight: 90})
	require.NoError(t, err)

	price := 110.0
	amenities := []string{"Balcony"}
	updated, err := svc.Update(ctx, r.ID, UpdateRequest{PricePerNight: &price, Amenities: &amenities})
	require.NoError(t, err)
	assert.Same(t, r, updated)
	assert.Equal(t, 110.0, r.PricePerNight())
	assert.Equal(t, []string{"Balcony"}, r.Amenities())

	negative := -5.0
	_, err = svc.Update(ctx, r.ID, UpdateRequest{PricePerNight: &negative})
	assert.ErrorIs(t, err, ErrNegativePrice)
	assert.Equal(t, 110.0, r.PricePerNight())

	huge := 1e308
	_, err = svc.Update(ctx, r.ID, UpdateRequest{PricePerNight: &huge})
	assert.ErrorIs(t, err, ErrPriceTooHigh)
	assert.Equal(t, 110.0, r.PricePerNight())

	_, err = svc.Update(ctx, "missing", UpdateRequest{PricePerNight: &price})
	assert.ErrorIs(t, err, ErrNotFound)
}

package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nekogravitycat/hotel-backend/internal/booking"
	"github.com/nekogravitycat/hotel-backend/internal/guest"
	"github.com/nekogravitycat/hotel-backend/internal/room"
)

type fixture struct {
	svc      Service
	bookings booking.Service
	booking  *booking.Booking
	room     *room.Room
}

// newFixture books a 3-night stay (2024-01-01 to 2024-01-04) in a $100 room.
func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	guests := guest.NewService(guest.NewMemRepository())
	rooms := room.NewService(room.NewMemRepository())
	bookings := booking.NewService(booking.NewMemRepository(), guests, rooms, zap.NewNop())

	g, err := guests.Create(ctx, guest.CreateRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	r, err := rooms.Create(ctx, room.CreateRequest{Number: "101", Type: "Deluxe", PricePerNight: 100})
	require.NoError(t, err)
	b, err := bookings.Create(ctx, booking.CreateRequest{
		GuestID:  g.ID,
		RoomID:   r.ID,
		CheckIn:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return fixture{
		svc:      NewService(NewMemRepository(), bookings),
		bookings: bookings,
		booking:  b,
		room:     r,
	}
}

func TestIssueInvoiceTotal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	inv, err := f.svc.Issue(ctx, IssueRequest{BookingID: f.booking.ID, AdditionalCharges: 20, Discount: 10})
	require.NoError(t, err)

	assert.Equal(t, 300.0, inv.BaseCost())
	assert.Equal(t, 310.0, inv.Total())
	assert.Equal(t, inv.Total(), inv.Total())
	assert.Same(t, f.booking, inv.Booking())
	assert.Equal(t, "Invoice "+inv.ID+": Total - $310.00", inv.String())
}

func TestTotalFollowsRoomPrice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	inv, err := f.svc.Issue(ctx, IssueRequest{BookingID: f.booking.ID, Discount: 50})
	require.NoError(t, err)
	assert.Equal(t, 250.0, inv.Total())

	f.room.SetPricePerNight(120)
	assert.Equal(t, 310.0, inv.Total())

	f.room.SetPricePerNight(10)
	assert.Equal(t, 0.0, inv.Total(), "total is floored at zero")
}

func TestIssueInvoiceRejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Issue(ctx, IssueRequest{BookingID: f.booking.ID, AdditionalCharges: -1})
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = f.svc.Issue(ctx, IssueRequest{BookingID: f.booking.ID, Discount: -1})
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = f.svc.Issue(ctx, IssueRequest{BookingID: f.booking.ID, AdditionalCharges: 1e308})
	assert.ErrorIs(t, err, ErrAmountTooLarge)

	_, err = f.svc.Issue(ctx, IssueRequest{BookingID: f.booking.ID, AdditionalCharges: 5, Discount: 306})
	assert.ErrorIs(t, err, ErrDiscountTooLarge)

	_, err = f.svc.Issue(ctx, IssueRequest{BookingID: "missing"})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.bookings.Cancel(ctx, f.booking.ID)
	require.NoError(t, err)
	_, err = f.svc.Issue(ctx, IssueRequest{BookingID: f.booking.ID})
	assert.ErrorIs(t, err, ErrBookingCancelled)

	_, total, err := f.svc.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestDiscountEqualToAmountIsAllowed(t *testing.T) {
	f := newFixture(t)

	inv, err := f.svc.Issue(context.Background(), IssueRequest{BookingID: f.booking.ID, AdditionalCharges: 20, Discount: 320})
	require.NoError(t, err)
	assert.Equal(t, 0.0, inv.Total())
}

func TestGetAndListInvoices(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.svc.Issue(ctx, IssueRequest{BookingID: f.booking.ID})
	require.NoError(t, err)
	_, err = f.svc.Issue(ctx, IssueRequest{BookingID: f.booking.ID, AdditionalCharges: 15})
	require.NoError(t, err)

	got, err := f.svc.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Same(t, first, got)

	_, err = f.svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	list, total, err := f.svc.List(ctx, Filter{BookingID: f.booking.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, first.ID, list[0].ID)

	_, total, err = f.svc.List(ctx, Filter{BookingID: "other"})
	require.NoError(t, err)
	assert.Zero(t, total)
}

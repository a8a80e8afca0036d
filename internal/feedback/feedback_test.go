package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/hotel-backend/internal/guest"
)

func TestSubmitFeedback(t *testing.T) {
	ctx := context.Background()
	guests := guest.NewService(guest.NewMemRepository())
	svc := NewService(NewMemRepository(), guests)

	g, err := guests.Create(ctx, guest.CreateRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	f, err := svc.Submit(ctx, SubmitRequest{GuestID: g.ID, Rating: 5, Comment: "Lovely stay"})
	require.NoError(t, err)
	assert.Same(t, g, f.Guest())
	assert.Equal(t, "Feedback from Alice: 5/5 - Lovely stay", f.String())

	got, err := svc.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Same(t, f, got)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Submit(ctx, SubmitRequest{GuestID: g.ID, Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}

	_, err = svc.Submit(ctx, SubmitRequest{GuestID: "missing", Rating: 3})
	assert.ErrorIs(t, err, ErrGuestNotFound)

	_, err = svc.Submit(ctx, SubmitRequest{GuestID: g.ID, Rating: 1, Comment: "Noisy"})
	require.NoError(t, err)

	list, total, err := svc.List(ctx, Filter{GuestID: g.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, f.ID, list[0].ID)
}

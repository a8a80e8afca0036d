package app

import (
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/hotel-backend/internal/api"
	bookingHttp "github.com/nekogravitycat/hotel-backend/internal/booking/http"
	feedbackHttp "github.com/nekogravitycat/hotel-backend/internal/feedback/http"
	guestHttp "github.com/nekogravitycat/hotel-backend/internal/guest/http"
	invoiceHttp "github.com/nekogravitycat/hotel-backend/internal/invoice/http"
	loyaltyHttp "github.com/nekogravitycat/hotel-backend/internal/loyalty/http"
	paymentHttp "github.com/nekogravitycat/hotel-backend/internal/payment/http"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/response"
	roomHttp "github.com/nekogravitycat/hotel-backend/internal/room/http"
	srHttp "github.com/nekogravitycat/hotel-backend/internal/servicerequest/http"
)

func (s *testServer) createRoom(t *testing.T, number string, price float64) roomHttp.RoomResponse {
	t.Helper()
	w := s.do("POST", "/v1/rooms", roomHttp.CreateRequest{
		Number:        number,
		Type:          "Deluxe",
		Amenities:     []string{"WiFi", "Minibar"},
		PricePerNight: price,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[roomHttp.RoomResponse](t, w)
}

func (s *testServer) createGuest(t *testing.T, name, email string) guestHttp.GuestResponse {
	t.Helper()
	w := s.do("POST", "/v1/guests", guestHttp.CreateRequest{Name: name, Email: email, Contact: "555-0100"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[guestHttp.GuestResponse](t, w)
}

func (s *testServer) book(guestID, roomID, checkIn, checkOut string) *httptest.ResponseRecorder {
	return s.do("POST", "/v1/bookings", bookingHttp.CreateBookingRequest{
		GuestID:  guestID,
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
}

func TestAuth(t *testing.T) {
	s := newTestServer(t)

	t.Run("Login with staff credentials", func(t *testing.T) {
		w := s.executeRequest("POST", "/v1/auth/login", api.LoginRequest{
			Email:    testStaffEmail,
			Password: testStaffPassword,
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decode[api.LoginResponse](t, w)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(1800), resp.ExpiresIn)

		// The issued token opens protected routes.
		w = s.executeRequest("GET", "/v1/rooms", nil, resp.AccessToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Wrong password", func(t *testing.T) {
		w := s.executeRequest("POST", "/v1/auth/login", api.LoginRequest{
			Email:    testStaffEmail,
			Password: "nope",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Missing token", func(t *testing.T) {
		w := s.executeRequest("GET", "/v1/bookings", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Garbage token", func(t *testing.T) {
		w := s.executeRequest("GET", "/v1/guests", nil, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestBookingToPaymentFlow(t *testing.T) {
	s := newTestServer(t)

	rm := s.createRoom(t, "101", 100)
	g := s.createGuest(t, "Alice", "alice@example.com")
	assert.True(t, rm.Available)
	assert.Equal(t, "Room 101 (Deluxe) - $100.00/night - Available", rm.Summary)

	var bookingID, invoiceID string

	t.Run("Create booking", func(t *testing.T) {
		w := s.book(g.ID, rm.ID, "2024-01-01", "2024-01-04")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		b := decode[bookingHttp.BookingResponse](t, w)
		bookingID = b.ID
		assert.Equal(t, 3, b.StayDuration)
		assert.Equal(t, "2024-01-01", b.CheckIn)
		assert.Equal(t, "2024-01-04", b.CheckOut)
		assert.Equal(t, "active", b.Status)
		assert.Equal(t, g.ID, b.Guest.ID)
		assert.Equal(t, rm.ID, b.Room.ID)

		// Side effects are visible through the other resources.
		room := decode[roomHttp.RoomResponse](t, s.do("GET", "/v1/rooms/"+rm.ID, nil))
		assert.False(t, room.Available)

		guest := decode[guestHttp.GuestResponse](t, s.do("GET", "/v1/guests/"+g.ID, nil))
		assert.Equal(t, []string{bookingID}, guest.BookingIDs)
	})

	t.Run("Double booking is refused", func(t *testing.T) {
		other := s.createGuest(t, "Bob", "bob@example.com")

		w := s.book(other.ID, rm.ID, "2024-02-01", "2024-02-02")
		assert.Equal(t, http.StatusConflict, w.Code)

		guest := decode[guestHttp.GuestResponse](t, s.do("GET", "/v1/guests/"+other.ID, nil))
		assert.Empty(t, guest.BookingIDs)
	})

	t.Run("Issue invoice", func(t *testing.T) {
		w := s.do("POST", "/v1/invoices", invoiceHttp.IssueInvoiceRequest{
			BookingID:         bookingID,
			AdditionalCharges: 20,
			Discount:          10,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		inv := decode[invoiceHttp.InvoiceResponse](t, w)
		invoiceID = inv.ID
		assert.Equal(t, 300.0, inv.BaseCost)
		assert.Equal(t, 310.0, inv.Total)
		assert.Equal(t, fmt.Sprintf("Invoice %s: Total - $310.00", inv.ID), inv.Summary)

		// Reading twice gives the same total.
		again := decode[invoiceHttp.InvoiceResponse](t, s.do("GET", "/v1/invoices/"+invoiceID, nil))
		assert.Equal(t, 310.0, again.Total)
	})

	t.Run("Invoice follows room price", func(t *testing.T) {
		price := 120.0
		w := s.do("PATCH", "/v1/rooms/"+rm.ID, roomHttp.UpdateRequest{PricePerNight: &price})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		inv := decode[invoiceHttp.InvoiceResponse](t, s.do("GET", "/v1/invoices/"+invoiceID, nil))
		assert.Equal(t, 370.0, inv.Total)
	})

	t.Run("Record payment", func(t *testing.T) {
		w := s.do("POST", "/v1/payments", paymentHttp.RecordPaymentRequest{
			InvoiceID: invoiceID,
			Method:    "Credit Card",
			PaidOn:    "2024-01-04",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		p := decode[paymentHttp.PaymentResponse](t, w)
		assert.Equal(t, invoiceID, p.InvoiceID)
		assert.Equal(t, "2024-01-04", p.PaidOn)
		assert.Contains(t, p.Summary, "via Credit Card")

		list := decode[response.PageResponse[paymentHttp.PaymentResponse]](t,
			s.do("GET", "/v1/payments?invoice_id="+invoiceID, nil))
		assert.Equal(t, 1, list.Total)
	})

	t.Run("Service request", func(t *testing.T) {
		w := s.do("POST", "/v1/service-requests", srHttp.CreateServiceRequestRequest{
			BookingID: bookingID,
			Type:      "Room Cleaning",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		sr := decode[srHttp.ServiceRequestResponse](t, w)
		assert.Equal(t, "Pending", sr.Status)

		w = s.do("PATCH", "/v1/service-requests/"+sr.ID, srHttp.UpdateStatusRequest{Status: "Completed"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		sr = decode[srHttp.ServiceRequestResponse](t, w)
		assert.Equal(t, "Completed", sr.Status)
		assert.Equal(t, fmt.Sprintf("Service Request %s for Room Cleaning - Status: Completed", sr.ID), sr.Summary)
	})

	t.Run("Check out", func(t *testing.T) {
		w := s.do("POST", "/v1/bookings/"+bookingID+"/checkout", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "checked_out", decode[bookingHttp.BookingResponse](t, w).Status)

		room := decode[roomHttp.RoomResponse](t, s.do("GET", "/v1/rooms/"+rm.ID, nil))
		assert.True(t, room.Available)

		// A finished booking cannot be cancelled.
		w = s.do("POST", "/v1/bookings/"+bookingID+"/cancel", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestBookingValidation(t *testing.T) {
	s := newTestServer(t)
	rm := s.createRoom(t, "201", 80)
	g := s.createGuest(t, "Carol", "carol@example.com")

	tests := []struct {
		name     string
		guestID  string
		roomID   string
		checkIn  string
		checkOut string
		code     int
	}{
		{"Check-out before check-in", g.ID, rm.ID, "2024-03-05", "2024-03-01", http.StatusBadRequest},
		{"Malformed date", g.ID, rm.ID, "03/01/2024", "2024-03-05", http.StatusBadRequest},
		{"Unknown guest", "00000000-0000-0000-0000-000000000000", rm.ID, "2024-03-01", "2024-03-02", http.StatusNotFound},
		{"Unknown room", g.ID, "00000000-0000-0000-0000-000000000000", "2024-03-01", "2024-03-02", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.book(tt.guestID, tt.roomID, tt.checkIn, tt.checkOut)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}

	// Nothing above touched the room or the guest.
	room := decode[roomHttp.RoomResponse](t, s.do("GET", "/v1/rooms/"+rm.ID, nil))
	assert.True(t, room.Available)
	guest := decode[guestHttp.GuestResponse](t, s.do("GET", "/v1/guests/"+g.ID, nil))
	assert.Empty(t, guest.BookingIDs)
}

func TestCancelBooking(t *testing.T) {
	s := newTestServer(t)
	rm := s.createRoom(t, "301", 150)
	g := s.createGuest(t, "Dan", "dan@example.com")

	w := s.book(g.ID, rm.ID, "2024-05-01", "2024-05-03")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	b := decode[bookingHttp.BookingResponse](t, w)

	w = s.do("POST", "/v1/bookings/"+b.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "cancelled", decode[bookingHttp.BookingResponse](t, w).Status)

	room := decode[roomHttp.RoomResponse](t, s.do("GET", "/v1/rooms/"+rm.ID, nil))
	assert.True(t, room.Available)
	guest := decode[guestHttp.GuestResponse](t, s.do("GET", "/v1/guests/"+g.ID, nil))
	assert.Empty(t, guest.BookingIDs)

	// Cancelled bookings cannot be billed.
	w = s.do("POST", "/v1/invoices", invoiceHttp.IssueInvoiceRequest{BookingID: b.ID})
	assert.Equal(t, http.StatusConflict, w.Code)

	list := decode[response.PageResponse[bookingHttp.BookingResponse]](t,
		s.do("GET", "/v1/bookings?status=cancelled", nil))
	assert.Equal(t, 1, list.Total)
}

func TestConcurrentBookingOfOneRoom(t *testing.T) {
	s := newTestServer(t)
	rm := s.createRoom(t, "401", 90)

	const n = 10
	guests := make([]string, n)
	for i := 0; i < n; i++ {
		guests[i] = s.createGuest(t, fmt.Sprintf("Guest %d", i), fmt.Sprintf("guest%d@example.com", i)).ID
	}

	var wg sync.WaitGroup
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = s.book(guests[i], rm.ID, "2024-06-01", "2024-06-02").Code
		}(i)
	}
	wg.Wait()

	created := 0
	for _, code := range codes {
		if code == http.StatusCreated {
			created++
		} else {
			assert.Equal(t, http.StatusConflict, code)
		}
	}
	assert.Equal(t, 1, created)
}

func TestLoyalty(t *testing.T) {
	s := newTestServer(t)
	g := s.createGuest(t, "Erin", "erin@example.com")
	base := "/v1/guests/" + g.ID + "/loyalty"

	w := s.do("GET", base, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 0, decode[loyaltyHttp.ProgramResponse](t, w).Balance)

	w = s.do("POST", base+"/earn", loyaltyHttp.PointsRequest{Points: 50})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	p := decode[loyaltyHttp.ProgramResponse](t, w)
	assert.Equal(t, 50, p.PointsEarned)
	assert.Equal(t, 50, p.Balance)

	w = s.do("POST", base+"/redeem", loyaltyHttp.PointsRequest{Points: 30})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	p = decode[loyaltyHttp.ProgramResponse](t, w)
	assert.Equal(t, 30, p.PointsRedeemed)
	assert.Equal(t, 20, p.Balance)

	w = s.do("POST", base+"/redeem", loyaltyHttp.PointsRequest{Points: 1000})
	assert.Equal(t, http.StatusConflict, w.Code)

	p = decode[loyaltyHttp.ProgramResponse](t, s.do("GET", base, nil))
	assert.Equal(t, 20, p.Balance)
	assert.Equal(t, 30, p.PointsRedeemed)

	guest := decode[guestHttp.GuestResponse](t, s.do("GET", "/v1/guests/"+g.ID, nil))
	assert.Equal(t, 20, guest.LoyaltyPoints)

	w = s.do("POST", base+"/earn", loyaltyHttp.PointsRequest{Points: -5})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Earned so far is 50. Crediting past the largest count is refused without wrapping negative.
	w = s.do("POST", base+"/earn", loyaltyHttp.PointsRequest{Points: math.MaxInt - 50})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = s.do("POST", base+"/earn", loyaltyHttp.PointsRequest{Points: 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	guest = decode[guestHttp.GuestResponse](t, s.do("GET", "/v1/guests/"+g.ID, nil))
	assert.Equal(t, math.MaxInt-30, guest.LoyaltyPoints)
}

func TestFeedback(t *testing.T) {
	s := newTestServer(t)
	g := s.createGuest(t, "Alice", "alice@example.com")

	w := s.do("POST", "/v1/feedback", feedbackHttp.SubmitFeedbackRequest{GuestID: g.ID, Rating: 5, Comment: "Lovely stay"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Feedback from Alice: 5/5 - Lovely stay", decode[feedbackHttp.FeedbackResponse](t, w).Summary)

	w = s.do("POST", "/v1/feedback", feedbackHttp.SubmitFeedbackRequest{GuestID: g.ID, Rating: 9})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	list := decode[response.PageResponse[feedbackHttp.FeedbackResponse]](t,
		s.do("GET", "/v1/feedback?guest_id="+g.ID, nil))
	assert.Equal(t, 1, list.Total)
	assert.Len(t, list.Items, 1)
}

func TestRoomAndGuestConflicts(t *testing.T) {
	s := newTestServer(t)
	s.createRoom(t, "501", 100)
	s.createGuest(t, "Frank", "frank@example.com")

	w := s.do("POST", "/v1/rooms", roomHttp.CreateRequest{Number: "501", Type: "Suite", PricePerNight: 10})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do("POST", "/v1/rooms", roomHttp.CreateRequest{Number: "502", Type: "Suite", PricePerNight: -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do("POST", "/v1/rooms", roomHttp.CreateRequest{Number: "502", Type: "Suite", PricePerNight: 1e308})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do("GET", "/v1/rooms?page=2305843009213693953&page_size=5", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	page := decode[response.PageResponse[roomHttp.RoomResponse]](t, s.do("GET", "/v1/rooms?page=100000&page_size=5", nil))
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Total)

	w = s.do("POST", "/v1/guests", guestHttp.CreateRequest{Name: "Frank Again", Email: "FRANK@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do("GET", "/v1/rooms/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	list := decode[response.PageResponse[roomHttp.RoomResponse]](t, s.do("GET", "/v1/rooms?available=true", nil))
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 20, list.PageSize)
}

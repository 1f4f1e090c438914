//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/handler/dto/request"
	"stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/middleware"
	"stayhub/tests/common/authtest"
	"stayhub/tests/common/dbtest"
	"stayhub/tests/common/httptest"
	"stayhub/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	availabilityURL = "/api/availability"
)

// moneyComparer lets go-cmp look at Money values without reaching into
// unexported fields.
var moneyComparer = cmp.Comparer(func(a, b booking.Money) bool {
	return a.Cents() == b.Cents()
})

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// seedInventory creates a tenant with one room type and the given room
// numbers. Weekend rate matches the base rate so totals stay date-independent.
func (s *BookingSuite) seedInventory(roomNumbers ...string) (tenantID, roomTypeID uuid.UUID) {
	t := s.T()
	tenantID = dbtest.CreateTestTenant(t, s.DB, "Seaside Inn")
	roomTypeID = dbtest.CreateTestRoomType(t, s.DB, tenantID, "Deluxe Double", "DLX", 10000, 10000)
	for _, n := range roomNumbers {
		dbtest.CreateTestRoom(t, s.DB, tenantID, roomTypeID, n)
	}
	return tenantID, roomTypeID
}

func (s *BookingSuite) staffToken(tenantID uuid.UUID) string {
	return authtest.IssueToken(s.T(), s.Config, uuid.New(), tenantID, middleware.RoleStaff)
}

// stayDates returns a 3-night stay two months out, far enough ahead that the
// moderate policy grants a full refund on cancellation.
func stayDates() (string, string) {
	checkIn := time.Now().UTC().AddDate(0, 2, 0)
	return checkIn.Format("2006-01-02"), checkIn.AddDate(0, 0, 3).Format("2006-01-02")
}

func createRequest(roomTypeID uuid.UUID) request.CreateBookingRequest {
	checkIn, checkOut := stayDates()
	return request.CreateBookingRequest{
		RoomTypeID: roomTypeID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Adults:     2,
		Guest: &request.GuestPayload{
			FullName: "Maria Santos",
			Phone:    "+15550001111",
			Email:    "maria@example.com",
		},
	}
}

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking is priced and stored as pending", func() {
		t := s.T()
		tenantID, roomTypeID := s.seedInventory("101")
		token := s.staffToken(tenantID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, createRequest(roomTypeID), token)

		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotEqual(t, uuid.Nil, created.ID)
		require.Len(t, created.ConfirmationCode, 8)
		require.Equal(t, "pending", created.Status)
		require.Equal(t, "pending", created.PaymentStatus)
		require.Equal(t, "Maria Santos", created.GuestName)
		require.Equal(t, "101", created.RoomNumber)

		expected := booking.Breakdown{
			NightlyRate:     booking.NewMoney(10000),
			Nights:          3,
			RoomCharges:     booking.NewMoney(30000),
			Subtotal:        booking.NewMoney(30000),
			TaxRate:         0.075,
			TaxAmount:       booking.NewMoney(2250),
			GrandTotal:      booking.NewMoney(32250),
			PlatformFeeRate: 0.02,
			PlatformFee:     booking.NewMoney(645),
			NetRevenue:      booking.NewMoney(31605),
			Currency:        "USD",
		}
		if diff := cmp.Diff(expected, created.Pricing, moneyComparer); diff != "" {
			t.Errorf("pricing mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, int64(32250), created.BalanceDueCents)

		// Detail fetch returns the same booking.
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, token)
		var fetched response.BookingResponse
		httptest.AssertSuccessResponse(t, dw, http.StatusOK, &fetched)
		require.Equal(t, created.ID, fetched.ID)
		require.Equal(t, created.Code, fetched.Code)
	})

	s.Run("Normal case: public lookup by confirmation code needs no token", func() {
		t := s.T()
		tenantID, roomTypeID := s.seedInventory("101")
		token := s.staffToken(tenantID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, createRequest(roomTypeID), token)
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/lookup/"+created.ConfirmationCode, nil, "")
		var found response.BookingResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &found)
		require.Equal(t, created.ID, found.ID)
	})

	s.Run("Error case: second booking for the only room conflicts", func() {
		t := s.T()
		tenantID, roomTypeID := s.seedInventory("101")
		token := s.staffToken(tenantID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, createRequest(roomTypeID), token)
		require.Equal(t, http.StatusCreated, w.Code)

		req2 := createRequest(roomTypeID)
		req2.Guest.Phone = "+15550002222"
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req2, token)
		httptest.AssertErrorResponse(t, w2, http.StatusConflict, "No room available")
	})

	s.Run("Error case: tenants cannot see each other's bookings", func() {
		t := s.T()
		tenantID, roomTypeID := s.seedInventory("101")
		token := s.staffToken(tenantID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, createRequest(roomTypeID), token)
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		otherTenant := dbtest.CreateTestTenant(t, s.DB, "Rival Resort")
		otherToken := s.staffToken(otherTenant)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, otherToken)
		httptest.AssertErrorResponse(t, dw, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: pay, check in and check out", func() {
		t := s.T()
		tenantID, roomTypeID := s.seedInventory("101")
		token := s.staffToken(tenantID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, createRequest(roomTypeID), token)
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		id := created.ID.String()

		// Full payment settles the balance and confirms the booking.
		payBody := map[string]any{"amount_cents": 32250, "method": "card"}
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+id+"/payments", payBody, token)
		var paid response.BookingResponse
		httptest.AssertSuccessResponse(t, pw, http.StatusOK, &paid)
		require.Equal(t, "confirmed", paid.Status)
		require.Equal(t, "paid", paid.PaymentStatus)
		require.Equal(t, int64(0), paid.BalanceDueCents)

		iw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+id+"/check-in", nil, token)
		var checkedIn response.BookingResponse
		httptest.AssertSuccessResponse(t, iw, http.StatusOK, &checkedIn)
		require.Equal(t, "checked_in", checkedIn.Status)
		require.NotNil(t, checkedIn.ActualCheckIn)

		// The room now shows occupied with this booking attached.
		rw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/rooms", nil, token)
		var rooms []*response.RoomResponse
		httptest.AssertSuccessResponse(t, rw, http.StatusOK, &rooms)
		require.Len(t, rooms, 1)
		require.Equal(t, "occupied", rooms[0].Status)
		require.NotNil(t, rooms[0].CurrentBookingID)
		require.Equal(t, created.ID, *rooms[0].CurrentBookingID)

		ow := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+id+"/check-out", nil, token)
		var checkedOut response.BookingResponse
		httptest.AssertSuccessResponse(t, ow, http.StatusOK, &checkedOut)
		require.Equal(t, "checked_out", checkedOut.Status)
		require.NotNil(t, checkedOut.ActualCheckOut)

		// Check-out sends the room to cleaning.
		rw2 := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/rooms", nil, token)
		var roomsAfter []*response.RoomResponse
		httptest.AssertSuccessResponse(t, rw2, http.StatusOK, &roomsAfter)
		require.Equal(t, "cleaning", roomsAfter[0].Status)
		require.Nil(t, roomsAfter[0].CurrentBookingID)
	})

	s.Run("Normal case: back-to-back stays on one room both check in", func() {
		t := s.T()
		tenantID, roomTypeID := s.seedInventory("101")
		token := s.staffToken(tenantID)

		first := createRequest(roomTypeID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, first, token)
		var earlier response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &earlier)

		// A later, non-overlapping stay on the same room.
		second := createRequest(roomTypeID)
		second.Guest.Phone = "+15550002222"
		later := time.Now().UTC().AddDate(0, 2, 7)
		second.CheckIn = later.Format("2006-01-02")
		second.CheckOut = later.AddDate(0, 0, 3).Format("2006-01-02")
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, second, token)
		var laterBooking response.BookingResponse
		httptest.AssertSuccessResponse(t, w2, http.StatusCreated, &laterBooking)

		payAndCheckIn := func(b response.BookingResponse) {
			id := b.ID.String()
			payBody := map[string]any{"amount_cents": 32250, "method": "card"}
			pw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+id+"/payments", payBody, token)
			require.Equal(t, http.StatusOK, pw.Code)

			iw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+id+"/check-in", nil, token)
			var checkedIn response.BookingResponse
			httptest.AssertSuccessResponse(t, iw, http.StatusOK, &checkedIn)
			require.Equal(t, "checked_in", checkedIn.Status)

			ow := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+id+"/check-out", nil, token)
			require.Equal(t, http.StatusOK, ow.Code)
		}

		payAndCheckIn(earlier)
		payAndCheckIn(laterBooking)
	})

	s.Run("Error case: check-out with an open balance is rejected", func() {
		t := s.T()
		tenantID, roomTypeID := s.seedInventory("101")
		token := s.staffToken(tenantID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, createRequest(roomTypeID), token)
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		id := created.ID.String()

		// Partial payment confirms the booking but leaves a balance.
		payBody := map[string]any{"amount_cents": 10000, "method": "cash"}
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+id+"/payments", payBody, token)
		var paid response.BookingResponse
		httptest.AssertSuccessResponse(t, pw, http.StatusOK, &paid)
		require.Equal(t, "confirmed", paid.Status)
		require.Equal(t, "partial", paid.PaymentStatus)

		iw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+id+"/check-in", nil, token)
		require.Equal(t, http.StatusOK, iw.Code)

		ow := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+id+"/check-out", nil, token)
		httptest.AssertErrorResponse(t, ow, http.StatusUnprocessableEntity, "outstanding balance")
	})

	s.Run("Normal case: early cancellation refunds in full and frees the room", func() {
		t := s.T()
		tenantID, roomTypeID := s.seedInventory("101")
		token := s.staffToken(tenantID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, createRequest(roomTypeID), token)
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		id := created.ID.String()

		payBody := map[string]any{"amount_cents": 32250, "method": "card"}
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+id+"/payments", payBody, token)
		require.Equal(t, http.StatusOK, pw.Code)

		cancelBody := map[string]string{"reason": "change of plans"}
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+id+"/cancel", cancelBody, token)
		var cancelled response.BookingResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusOK, &cancelled)
		require.Equal(t, "cancelled", cancelled.Status)
		require.NotNil(t, cancelled.Cancellation)
		require.Equal(t, "change of plans", cancelled.Cancellation.Reason)
		require.Equal(t, int64(32250), cancelled.Cancellation.Outcome.Refund.Cents())
		require.Equal(t, int64(0), cancelled.AmountPaidCents)

		// The dates open up again for the same room.
		req2 := createRequest(roomTypeID)
		req2.Guest.Phone = "+15550002222"
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req2, token)
		require.Equal(t, http.StatusCreated, w2.Code)
	})
}

func (s *BookingSuite) TestConcurrentBooking() {
	s.Run("Normal case: two simultaneous requests for the last room yield one booking", func() {
		t := s.T()
		tenantID, roomTypeID := s.seedInventory("101")
		token := s.staffToken(tenantID)

		reqA := createRequest(roomTypeID)
		reqB := createRequest(roomTypeID)
		reqB.Guest.Phone = "+15550002222"

		start := make(chan struct{})
		codes := make(chan int, 2)
		var wg sync.WaitGroup
		for _, body := range []request.CreateBookingRequest{reqA, reqB} {
			wg.Add(1)
			go func(body request.CreateBookingRequest) {
				defer wg.Done()
				<-start
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, token)
				codes <- w.Code
			}(body)
		}
		close(start)
		wg.Wait()
		close(codes)

		var got []int
		for code := range codes {
			got = append(got, code)
		}
		require.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, got)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		var listed response.BookingListResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &listed)
		require.Len(t, listed.Items, 1)
	})
}

func (s *BookingSuite) TestAvailability() {
	s.Run("Normal case: units shrink as rooms are booked", func() {
		t := s.T()
		tenantID, roomTypeID := s.seedInventory("101", "102")
		token := s.staffToken(tenantID)

		checkIn, checkOut := stayDates()
		url := fmt.Sprintf("%s?check_in=%s&check_out=%s&adults=2", availabilityURL, checkIn, checkOut)

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		var before []*response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, aw, http.StatusOK, &before)
		require.Len(t, before, 1)
		require.Equal(t, roomTypeID, before[0].RoomTypeID)
		require.Equal(t, 2, before[0].UnitsAvailable)
		require.Equal(t, int64(30000), before[0].TotalPriceCents)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, createRequest(roomTypeID), token)
		require.Equal(t, http.StatusCreated, w.Code)

		aw2 := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		var after []*response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, aw2, http.StatusOK, &after)
		require.Len(t, after, 1)
		require.Equal(t, 1, after[0].UnitsAvailable)
	})
}

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"stayhub/internal/domain/booking"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qs queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create booking
// @Description Create a booking, allocating a concrete room for the stay
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	tenantID, actorID, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.CreateBooking(c.Request.Context(), tenantID, actorID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range",
			})
		case errors.Is(err, commands.ErrGuestInfoRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Guest information is required",
			})
		case errors.Is(err, commands.ErrTenantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Tenant not found",
			})
		case errors.Is(err, commands.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room type not found",
			})
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		case errors.Is(err, commands.ErrOccupancyExceeded):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Occupancy exceeds the room type capacity",
			})
		case errors.Is(err, commands.ErrRoomNotAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No room available for the requested dates",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	tenantID, _, ok := requireIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Lookup booking by confirmation code
// @Description Public self-service lookup by the code printed on the confirmation
// @Tags bookings
// @Produce json
// @Param code path string true "Confirmation code"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/lookup/{code} [get]
func (h *BookingHandler) LookupByConfirmationCode(c *gin.Context) {
	view, err := h.queries.GetByConfirmationCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description Cursor-paginated booking list with filters
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param room_type_id query string false "Filter by room type"
// @Param guest_id query string false "Filter by guest"
// @Param from query string false "Check-in on or after (YYYY-MM-DD)"
// @Param to query string false "Check-in before (YYYY-MM-DD)"
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	tenantID, _, ok := requireIdentity(c)
	if !ok {
		return
	}

	filter, err := parseBookingFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	page, err := h.queries.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCursor):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pagination cursor",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListPage(page))
}

// @Summary Today's operations
// @Description Arrivals, departures and in-house bookings for today in the tenant's timezone
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.TodayOperationsResponse
// @Failure 401 {object} map[string]string
// @Router /operations/today [get]
func (h *BookingHandler) TodayOperations(c *gin.Context) {
	tenantID, _, ok := requireIdentity(c)
	if !ok {
		return
	}

	view, err := h.queries.TodayOperations(c.Request.Context(), tenantID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrTenantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Tenant not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTodayOperations(view))
}

// @Summary Check in
// @Description Move a confirmed booking to checked_in and occupy the room
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/check-in [post]
func (h *BookingHandler) CheckIn(c *gin.Context) {
	h.lifecycle(c, h.commands.CheckIn)
}

// @Summary Check out
// @Description Move a checked_in booking with a settled balance to checked_out
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/check-out [post]
func (h *BookingHandler) CheckOut(c *gin.Context) {
	h.lifecycle(c, h.commands.CheckOut)
}

// @Summary Cancel booking
// @Description Cancel a booking, applying the tenant's refund policy
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	tenantID, actorID, ok := requireIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	view, err := h.commands.CancelBooking(c.Request.Context(), tenantID, actorID, id, req.Reason)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Record payment
// @Description Append a payment to the booking's ledger
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RecordPaymentRequest true "Payment"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/payments [post]
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	tenantID, actorID, ok := requireIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.RecordPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.RecordPayment(c.Request.Context(), tenantID, actorID, id, req.AmountCents, booking.PaymentMethod(req.Method))
	if err != nil {
		respondLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

type lifecycleFn func(ctx context.Context, tenantID, actor, bookingID uuid.UUID) (*queries.BookingView, error)

func (h *BookingHandler) lifecycle(c *gin.Context, fn lifecycleFn) {
	tenantID, actorID, ok := requireIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := fn(c.Request.Context(), tenantID, actorID, id)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func respondLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Transition not allowed from the booking's current status",
		})
	case errors.Is(err, commands.ErrOutstandingBalance):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Booking has an outstanding balance",
		})
	case errors.Is(err, commands.ErrBookingTerminal):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Booking is in a terminal state",
		})
	case errors.Is(err, commands.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment amount or method",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func requireIdentity(c *gin.Context) (tenantID, actorID uuid.UUID, ok bool) {
	tenantID, tOk := middleware.GetTenantID(c)
	actorID, aOk := middleware.GetActorID(c)
	if !tOk || !aOk {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, uuid.Nil, false
	}
	return tenantID, actorID, true
}

func parseBookingFilter(c *gin.Context) (queries.BookingFilter, error) {
	var f queries.BookingFilter

	if s := c.Query("status"); s != "" {
		f.Status = &s
	}
	if s := c.Query("room_type_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return f, errors.New("invalid room_type_id")
		}
		f.RoomTypeID = &id
	}
	if s := c.Query("guest_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return f, errors.New("invalid guest_id")
		}
		f.GuestID = &id
	}
	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return f, errors.New("invalid from date")
		}
		f.From = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return f, errors.New("invalid to date")
		}
		f.To = &t
	}
	f.AfterCursor = c.Query("after")
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return f, errors.New("invalid limit")
		}
		f.Limit = n
	}
	return f, nil
}

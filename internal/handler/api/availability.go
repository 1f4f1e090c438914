package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	queries queries.AvailabilityQueries
}

func NewAvailabilityHandler(qs queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{queries: qs}
}

// @Summary Check availability
// @Description List room types with free units and total price for a stay
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param room_type_id query string false "Restrict to one room type"
// @Param adults query int false "Number of adults" default(1)
// @Param children query int false "Number of children" default(0)
// @Success 200 {array} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	checkIn := c.Query("check_in")
	checkOut := c.Query("check_out")
	if checkIn == "" || checkOut == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "check_in and check_out are required",
		})
		return
	}

	var roomTypeID *uuid.UUID
	if s := c.Query("room_type_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid room_type_id",
			})
			return
		}
		roomTypeID = &id
	}

	adults := queryInt(c, "adults", 1)
	children := queryInt(c, "children", 0)

	results, err := h.queries.CheckAvailability(c.Request.Context(), tenantID, checkIn, checkOut, roomTypeID, adults, children)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailability(results))
}

func queryInt(c *gin.Context, key string, fallback int) int {
	s := c.Query(key)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

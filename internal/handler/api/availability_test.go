//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/httptest"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
	tenantID    uuid.UUID
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)
	s.tenantID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("tenant_id", s.tenantID)
		c.Set("actor_id", uuid.New())
		c.Set("actor_role", middleware.RoleStaff)
		c.Next()
	}

	s.router.GET("/availability", authMiddleware, s.handler.CheckAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestCheckAvailability() {
	result := &queries.RoomTypeAvailability{
		RoomTypeID:       uuid.New(),
		Name:             "Deluxe Double",
		Code:             "DLX",
		UnitsAvailable:   2,
		NightlyRateCents: 10000,
		TotalPriceCents:  30000,
		Nights:           3,
		Currency:         "USD",
	}

	s.Run("success: returns priced room types", func() {
		s.mockQueries.EXPECT().
			CheckAvailability(gomock.Any(), s.tenantID, "2026-03-10", "2026-03-13", nil, 2, 1).
			Return([]*queries.RoomTypeAvailability{result}, nil).Times(1)

		url := "/availability?check_in=2026-03-10&check_out=2026-03-13&adults=2&children=1"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var resp []*resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().Len(resp, 1)
		s.Equal("DLX", resp[0].Code)
		s.Equal(int64(30000), resp[0].TotalPriceCents)
		s.Equal(2, resp[0].UnitsAvailable)
	})

	s.Run("success: occupancy defaults to one adult", func() {
		s.mockQueries.EXPECT().
			CheckAvailability(gomock.Any(), s.tenantID, "2026-03-10", "2026-03-13", nil, 1, 0).
			Return([]*queries.RoomTypeAvailability{}, nil).Times(1)

		url := "/availability?check_in=2026-03-10&check_out=2026-03-13"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: restricts to one room type", func() {
		roomTypeID := uuid.New()
		s.mockQueries.EXPECT().
			CheckAvailability(gomock.Any(), s.tenantID, "2026-03-10", "2026-03-13", gomock.Any(), 1, 0).
			DoAndReturn(func(_ any, _ uuid.UUID, _, _ string, filter *uuid.UUID, _, _ int) ([]*queries.RoomTypeAvailability, error) {
				s.Require().NotNil(filter)
				s.Equal(roomTypeID, *filter)
				return []*queries.RoomTypeAvailability{result}, nil
			}).Times(1)

		url := "/availability?check_in=2026-03-10&check_out=2026-03-13&room_type_id=" + roomTypeID.String()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when dates are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?check_in=2026-03-10", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "check_in and check_out are required")
	})

	s.Run("error: 400 for a malformed room type filter", func() {
		url := "/availability?check_in=2026-03-10&check_out=2026-03-13&room_type_id=nope"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room_type_id")
	})

	s.Run("error: 400 for an invalid range", func() {
		s.mockQueries.EXPECT().
			CheckAvailability(gomock.Any(), s.tenantID, "2026-03-13", "2026-03-10", nil, 1, 0).
			Return(nil, queries.ErrInvalidDateRange).Times(1)

		url := "/availability?check_in=2026-03-13&check_out=2026-03-10"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?check_in=2026-03-10&check_out=2026-03-13", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

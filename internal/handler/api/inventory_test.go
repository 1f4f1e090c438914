//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/httptest"
	"stayhub/tests/common/testutil"
	commandsmock "stayhub/tests/mock/commands"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InventoryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInventoryCommands
	mockQueries  *queriesmock.MockInventoryQueries
	handler      *api.InventoryHandler
	tenantID     uuid.UUID
}

func (s *InventoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInventoryQueries(s.mockCtrl)
	s.handler = api.NewInventoryHandler(s.mockCommands, s.mockQueries)
	s.tenantID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("tenant_id", s.tenantID)
		c.Set("actor_id", uuid.New())
		c.Set("actor_role", middleware.RoleManager)
		c.Next()
	}

	s.router.GET("/room-types", authMiddleware, s.handler.ListRoomTypes)
	s.router.POST("/room-types", authMiddleware, s.handler.CreateRoomType)
	s.router.PATCH("/room-types/:id", authMiddleware, s.handler.UpdateRoomType)
	s.router.DELETE("/room-types/:id", authMiddleware, s.handler.DeactivateRoomType)
	s.router.GET("/rooms", authMiddleware, s.handler.ListRooms)
	s.router.POST("/rooms", authMiddleware, s.handler.CreateRoom)
	s.router.PATCH("/rooms/:id/status", authMiddleware, s.handler.UpdateRoomStatus)
	s.router.DELETE("/rooms/:id", authMiddleware, s.handler.DeactivateRoom)
}

func (s *InventoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInventoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}

func (s *InventoryHandlerTestSuite) roomTypeView() *queries.RoomTypeView {
	return queries.NewRoomTypeView(builder.NewRoomTypeBuilder().WithTenantID(s.tenantID).MustBuild(), 3)
}

func (s *InventoryHandlerTestSuite) roomView() *queries.RoomView {
	return queries.NewRoomView(builder.NewRoomBuilder().WithTenantID(s.tenantID).MustBuild(), "Deluxe Double")
}

func (s *InventoryHandlerTestSuite) TestCreateRoomType() {
	url := "/room-types"
	reqBody := builder.NewRoomTypeBuilder().BuildCreateRequestDTO()
	returnView := s.roomTypeView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().CreateRoomType(gomock.Any(), s.tenantID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.RoomTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(returnView.ID, resp.ID)
		s.Equal("DLX", resp.Code)
		s.Equal(3, resp.TotalRooms)
	})

	s.Run("error: 400 on validation failures", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing code", mutate: testutil.Field("code", nil)},
			{name: "zero max adults", mutate: testutil.Field("max_adults", 0)},
			{name: "zero base rate", mutate: testutil.Field("base_rate_cents", 0)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 on a duplicate code", func() {
		s.mockCommands.EXPECT().CreateRoomType(gomock.Any(), s.tenantID, gomock.Any()).
			Return(nil, commands.ErrDuplicateRoomTypeCode).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Room type code already exists")
	})

	s.Run("error: 422 on domain validation", func() {
		s.mockCommands.EXPECT().CreateRoomType(gomock.Any(), s.tenantID, gomock.Any()).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

func (s *InventoryHandlerTestSuite) TestUpdateRoomType() {
	returnView := s.roomTypeView()
	url := "/room-types/" + returnView.ID.String()

	s.Run("success: patches rates", func() {
		s.mockCommands.EXPECT().UpdateRoomType(gomock.Any(), s.tenantID, returnView.ID, gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, p commands.UpdateRoomTypeParams) (*queries.RoomTypeView, error) {
				s.Require().NotNil(p.BaseRateCents)
				s.Equal(int64(12000), *p.BaseRateCents)
				s.Nil(p.Name)
				return returnView, nil
			}).Times(1)

		body := map[string]any{"base_rate_cents": 12000}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().UpdateRoomType(gomock.Any(), s.tenantID, returnView.ID, gomock.Any()).
			Return(nil, commands.ErrRoomTypeNotFound).Times(1)

		body := map[string]any{"name": "Suite"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room type not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/room-types/nope", map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room type ID")
	})
}

func (s *InventoryHandlerTestSuite) TestDeactivateRoomType() {
	id := uuid.New()
	url := "/room-types/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeactivateRoomType(gomock.Any(), s.tenantID, id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 409 while rooms remain", func() {
		s.mockCommands.EXPECT().DeactivateRoomType(gomock.Any(), s.tenantID, id).
			Return(commands.ErrRoomTypeHasRooms).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "still has active rooms")
	})
}

func (s *InventoryHandlerTestSuite) TestListRoomTypes() {
	s.Run("success: active only by default", func() {
		s.mockQueries.EXPECT().ListRoomTypes(gomock.Any(), s.tenantID, false).
			Return([]*queries.RoomTypeView{s.roomTypeView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room-types", nil, "token")

		var resp []*resdto.RoomTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("success: include_inactive passes through", func() {
		s.mockQueries.EXPECT().ListRoomTypes(gomock.Any(), s.tenantID, true).
			Return([]*queries.RoomTypeView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room-types?include_inactive=true", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *InventoryHandlerTestSuite) TestCreateRoom() {
	url := "/rooms"
	reqBody := builder.NewRoomBuilder().BuildCreateRequestDTO()
	returnView := s.roomView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), s.tenantID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal("204", resp.Number)
		s.Equal("available", resp.Status)
	})

	s.Run("error: 400 for a missing number", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("number", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 on a duplicate number", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), s.tenantID, gomock.Any()).
			Return(nil, commands.ErrDuplicateRoomNumber).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Room number already exists")
	})

	s.Run("error: 404 for an unknown room type", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), s.tenantID, gomock.Any()).
			Return(nil, commands.ErrRoomTypeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room type not found")
	})
}

func (s *InventoryHandlerTestSuite) TestListRooms() {
	s.Run("success: filters by room type", func() {
		roomTypeID := uuid.New()
		s.mockQueries.EXPECT().ListRooms(gomock.Any(), s.tenantID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, filter *uuid.UUID) ([]*queries.RoomView, error) {
				s.Require().NotNil(filter)
				s.Equal(roomTypeID, *filter)
				return []*queries.RoomView{s.roomView()}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?room_type_id="+roomTypeID.String(), nil, "token")

		var resp []*resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("error: 400 for a malformed filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?room_type_id=nope", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room_type_id")
	})
}

func (s *InventoryHandlerTestSuite) TestUpdateRoomStatus() {
	returnView := s.roomView()
	url := "/rooms/" + returnView.ID.String() + "/status"

	s.Run("success: moves the room to cleaning", func() {
		s.mockCommands.EXPECT().UpdateRoomStatus(gomock.Any(), s.tenantID, returnView.ID, gomock.Any()).
			Return(returnView, nil).Times(1)

		body := map[string]string{"status": "cleaning"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for a missing status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 while the room holds a booking", func() {
		s.mockCommands.EXPECT().UpdateRoomStatus(gomock.Any(), s.tenantID, returnView.ID, gomock.Any()).
			Return(nil, commands.ErrRoomInUse).Times(1)

		body := map[string]string{"status": "maintenance"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "reserved or occupied")
	})
}

func (s *InventoryHandlerTestSuite) TestDeactivateRoom() {
	id := uuid.New()
	url := "/rooms/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeactivateRoom(gomock.Any(), s.tenantID, id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 while reserved or occupied", func() {
		s.mockCommands.EXPECT().DeactivateRoom(gomock.Any(), s.tenantID, id).
			Return(commands.ErrRoomInUse).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "reserved or occupied")
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().DeactivateRoom(gomock.Any(), s.tenantID, id).
			Return(commands.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

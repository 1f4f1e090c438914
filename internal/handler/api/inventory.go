package api

import (
	"errors"
	"net/http"

	"stayhub/internal/domain/room"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	commands commands.InventoryCommands
	queries  queries.InventoryQueries
}

func NewInventoryHandler(cmds commands.InventoryCommands, qs queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary List room types
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param include_inactive query bool false "Include deactivated room types"
// @Success 200 {array} resdto.RoomTypeResponse
// @Failure 401 {object} map[string]string
// @Router /room-types [get]
func (h *InventoryHandler) ListRoomTypes(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.queries.ListRoomTypes(c.Request.Context(), tenantID, c.Query("include_inactive") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomTypeViews(views))
}

// @Summary Create room type
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomTypeRequest true "Room type"
// @Success 201 {object} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /room-types [post]
func (h *InventoryHandler) CreateRoomType(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.CreateRoomType(c.Request.Context(), tenantID, req.ToParams())
	if err != nil {
		respondInventoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomTypeView(view))
}

// @Summary Update room type
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Param request body reqdto.UpdateRoomTypeRequest true "Fields to update"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /room-types/{id} [patch]
func (h *InventoryHandler) UpdateRoomType(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room type ID format"})
		return
	}

	var req reqdto.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.UpdateRoomType(c.Request.Context(), tenantID, id, req.ToParams())
	if err != nil {
		respondInventoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomTypeView(view))
}

// @Summary Deactivate room type
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /room-types/{id} [delete]
func (h *InventoryHandler) DeactivateRoomType(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room type ID format"})
		return
	}

	if err := h.commands.DeactivateRoomType(c.Request.Context(), tenantID, id); err != nil {
		respondInventoryError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List rooms
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param room_type_id query string false "Filter by room type"
// @Success 200 {array} resdto.RoomResponse
// @Failure 401 {object} map[string]string
// @Router /rooms [get]
func (h *InventoryHandler) ListRooms(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var roomTypeID *uuid.UUID
	if s := c.Query("room_type_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room_type_id"})
			return
		}
		roomTypeID = &id
	}

	views, err := h.queries.ListRooms(c.Request.Context(), tenantID, roomTypeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Create room
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms [post]
func (h *InventoryHandler) CreateRoom(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.CreateRoom(c.Request.Context(), tenantID, req.ToParams())
	if err != nil {
		respondInventoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary Update room status
// @Description Housekeeping status changes; reserved/occupied are owned by the booking lifecycle
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomStatusRequest true "New status"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id}/status [patch]
func (h *InventoryHandler) UpdateRoomStatus(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID format"})
		return
	}

	var req reqdto.UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.UpdateRoomStatus(c.Request.Context(), tenantID, id, room.Status(req.Status))
	if err != nil {
		respondInventoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Deactivate room
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id} [delete]
func (h *InventoryHandler) DeactivateRoom(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID format"})
		return
	}

	if err := h.commands.DeactivateRoom(c.Request.Context(), tenantID, id); err != nil {
		respondInventoryError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondInventoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRoomTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Room type not found"})
	case errors.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
	case errors.Is(err, commands.ErrDuplicateRoomTypeCode):
		c.JSON(http.StatusConflict, gin.H{"error": "Room type code already exists"})
	case errors.Is(err, commands.ErrDuplicateRoomNumber):
		c.JSON(http.StatusConflict, gin.H{"error": "Room number already exists"})
	case errors.Is(err, commands.ErrRoomTypeHasRooms):
		c.JSON(http.StatusConflict, gin.H{"error": "Room type still has active rooms"})
	case errors.Is(err, commands.ErrRoomInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "Room is reserved or occupied"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

package handler

import (
	"net/http"

	"hotelier/internal/dto"
	"hotelier/internal/service"

	"github.com/gin-gonic/gin"
)

type RoomsHandler struct{ svc service.RoomService }

func NewRoomsHandler(svc service.RoomService) *RoomsHandler {
	return &RoomsHandler{svc: svc}
}

// Create godoc
// @Summary Register a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param body body dto.CreateRoomRequest true "Room"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/rooms [post]
func (h *RoomsHandler) Create(c *gin.Context) {
	var req dto.CreateRoomRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RoomsHandler) List(c *gin.Context) {
	var filter dto.PageFilter
	if !bindQuery(c, &filter) {
		return
	}
	items, total, err := h.svc.List(c.Request.Context(), filter.Page, filter.Limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total, "page": filter.Page, "limit": filter.Limit})
}

func (h *RoomsHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RoomsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateRoomRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RoomsHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.UpdateStatus(c.Request.Context(), id, *req.Active); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Room status updated"})
}

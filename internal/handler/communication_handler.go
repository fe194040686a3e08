package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scintranet/staff-api/internal/service"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
	"github.com/scintranet/staff-api/pkg/response"
)

// CommunicationHandler handles announcement endpoints.
type CommunicationHandler struct {
	service *service.CommunicationService
}

// NewCommunicationHandler constructs a communication handler.
func NewCommunicationHandler(svc *service.CommunicationService) *CommunicationHandler {
	return &CommunicationHandler{service: svc}
}

// List godoc
// @Summary List communications
// @Tags Communications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /communications [get]
func (h *CommunicationHandler) List(c *gin.Context) {
	comms, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, comms, nil)
}

// Create godoc
// @Summary Publish communication
// @Tags Communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateCommunicationRequest true "Communication payload"
// @Success 201 {object} response.Envelope
// @Router /communications [post]
func (h *CommunicationHandler) Create(c *gin.Context) {
	var req service.CreateCommunicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	comms, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comms)
}

// Update godoc
// @Summary Update communication
// @Tags Communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Communication ID"
// @Param payload body service.UpdateCommunicationRequest true "Communication payload"
// @Success 200 {object} response.Envelope
// @Router /communications/{id} [put]
func (h *CommunicationHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateCommunicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	comms, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, comms, nil)
}

// Delete godoc
// @Summary Delete communication
// @Tags Communications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Communication ID"
// @Success 200 {object} response.Envelope
// @Router /communications/{id} [delete]
func (h *CommunicationHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	comms, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, comms, nil)
}

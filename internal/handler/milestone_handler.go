package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scintranet/staff-api/internal/service"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
	"github.com/scintranet/staff-api/pkg/response"
)

// MilestoneHandler handles admissions milestone endpoints.
type MilestoneHandler struct {
	service *service.MilestoneService
}

// NewMilestoneHandler constructs a milestone handler.
func NewMilestoneHandler(svc *service.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{service: svc}
}

// List godoc
// @Summary List milestones
// @Tags Milestones
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /milestones [get]
func (h *MilestoneHandler) List(c *gin.Context) {
	milestones, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, milestones, nil)
}

// Create godoc
// @Summary Create milestone
// @Tags Milestones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.MilestoneRequest true "Milestone payload"
// @Success 201 {object} response.Envelope
// @Router /milestones [post]
func (h *MilestoneHandler) Create(c *gin.Context) {
	var req service.MilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	milestones, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, milestones)
}

// Update godoc
// @Summary Update milestone
// @Tags Milestones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Milestone ID"
// @Param payload body service.MilestoneRequest true "Milestone payload"
// @Success 200 {object} response.Envelope
// @Router /milestones/{id} [put]
func (h *MilestoneHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.MilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	milestones, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, milestones, nil)
}

// Toggle godoc
// @Summary Toggle milestone completion
// @Description Set the completion flag and return the patched milestone
// @Tags Milestones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Milestone ID"
// @Param payload body handler.ToggleRequest true "Completion flag"
// @Success 200 {object} response.Envelope
// @Router /milestones/{id}/toggle [patch]
func (h *MilestoneHandler) Toggle(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	milestone, err := h.service.Toggle(c.Request.Context(), id, req.Completed)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, milestone, nil)
}

// Delete godoc
// @Summary Delete milestone
// @Tags Milestones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Milestone ID"
// @Success 200 {object} response.Envelope
// @Router /milestones/{id} [delete]
func (h *MilestoneHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	milestones, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, milestones, nil)
}

// ToggleRequest carries the completion flag for milestone and todo toggles.
type ToggleRequest struct {
	Completed bool `json:"completed"`
}

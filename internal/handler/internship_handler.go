package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scintranet/staff-api/internal/service"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
	"github.com/scintranet/staff-api/pkg/response"
)

// InternshipHandler handles internship endpoints.
type InternshipHandler struct {
	service *service.InternshipService
}

// NewInternshipHandler constructs an internship handler.
func NewInternshipHandler(svc *service.InternshipService) *InternshipHandler {
	return &InternshipHandler{service: svc}
}

// List godoc
// @Summary List internships
// @Tags Internships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /internships [get]
func (h *InternshipHandler) List(c *gin.Context) {
	internships, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, internships, nil)
}

// Create godoc
// @Summary Create internship
// @Tags Internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.InternshipRequest true "Internship payload"
// @Success 201 {object} response.Envelope
// @Router /internships [post]
func (h *InternshipHandler) Create(c *gin.Context) {
	var req service.InternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	internships, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, internships)
}

// Update godoc
// @Summary Update internship
// @Tags Internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Param payload body service.InternshipRequest true "Internship payload"
// @Success 200 {object} response.Envelope
// @Router /internships/{id} [put]
func (h *InternshipHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.InternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	internships, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, internships, nil)
}

// Delete godoc
// @Summary Delete internship
// @Tags Internships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 200 {object} response.Envelope
// @Router /internships/{id} [delete]
func (h *InternshipHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	internships, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, internships, nil)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scintranet/staff-api/internal/service"
	"github.com/scintranet/staff-api/pkg/response"
)

// ApprovalHandler exposes the signup approval queue to super admins.
type ApprovalHandler struct {
	service *service.ApprovalService
}

// NewApprovalHandler creates a new handler.
func NewApprovalHandler(svc *service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{service: svc}
}

// ListPending godoc
// @Summary List pending signups
// @Tags Approvals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admin/pending-users [get]
func (h *ApprovalHandler) ListPending(c *gin.Context) {
	pending, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, pending, nil)
}

// Accept godoc
// @Summary Accept a pending signup
// @Description Create the login identity and approved profile for a pending user
// @Tags Approvals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pending user ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /admin/pending-users/{id}/accept [post]
func (h *ApprovalHandler) Accept(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.service.Accept(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result, nil)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scintranet/staff-api/internal/service"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
	"github.com/scintranet/staff-api/pkg/response"
)

// AdmissionsHandler handles the aggregate admissions counters.
type AdmissionsHandler struct {
	service *service.AdmissionsService
}

// NewAdmissionsHandler constructs an admissions handler.
func NewAdmissionsHandler(svc *service.AdmissionsService) *AdmissionsHandler {
	return &AdmissionsHandler{service: svc}
}

// List godoc
// @Summary List admissions metrics
// @Tags Admissions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admissions-metrics [get]
func (h *AdmissionsHandler) List(c *gin.Context) {
	metrics, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, metrics, nil)
}

// Save godoc
// @Summary Save admissions metrics
// @Description Upsert the aggregate counters by identifier
// @Tags Admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.AdmissionsMetricRequest true "Metrics payload"
// @Success 200 {object} response.Envelope
// @Router /admissions-metrics [put]
func (h *AdmissionsHandler) Save(c *gin.Context) {
	var req service.AdmissionsMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	metrics, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, metrics, nil)
}

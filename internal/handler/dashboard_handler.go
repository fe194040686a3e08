package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scintranet/staff-api/internal/service"
	"github.com/scintranet/staff-api/pkg/response"
)

// DashboardHandler serves the aggregated entity state.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs a dashboard handler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Load godoc
// @Summary Load dashboard state
// @Description Fetch every collection concurrently and return the full mapped state
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Load(c *gin.Context) {
	state, err := h.service.Load(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state, nil)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scintranet/staff-api/internal/service"
	"github.com/scintranet/staff-api/pkg/response"
)

// SeedHandler exposes demo fixture loading and table status to super admins.
type SeedHandler struct {
	service *service.SeedService
}

// NewSeedHandler constructs a seed handler.
func NewSeedHandler(svc *service.SeedService) *SeedHandler {
	return &SeedHandler{service: svc}
}

// Status godoc
// @Summary Table row counts
// @Description Report the row count per known table; unreachable tables report null
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/seed/status [get]
func (h *SeedHandler) Status(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Status(c.Request.Context()), nil)
}

// Seed godoc
// @Summary Load demo fixtures
// @Description Idempotently upsert the demo dataset
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admin/seed [post]
func (h *SeedHandler) Seed(c *gin.Context) {
	if err := h.service.Seed(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"ok": true}, nil)
}

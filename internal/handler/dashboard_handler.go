package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/response"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetCounts godoc
// GET /api/v1/admin/dashboard
func (h *DashboardHandler) GetCounts(c *gin.Context) {
	counts, err := h.dashboardService.GetCounts(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"dashboard": counts})
}

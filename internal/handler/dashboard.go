package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wmsConsultant/backend/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GET /api/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	summary, err := h.dashboardService.Summarize()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

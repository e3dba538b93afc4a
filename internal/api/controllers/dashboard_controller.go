package controllers

import (
	"github.com/gin-gonic/gin"

	"boulevard/internal/services"
	"boulevard/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

func (d *DashboardController) StatsHandler(c *gin.Context) {
	stats, err := d.dashboardService.Stats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Dashboard stats fetched successfully")
}

package controllers

import (
	"github.com/gin-gonic/gin"

	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

func (ctrl *DashboardController) Get(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	dashboard, err := ctrl.dashboardService.GetDashboard(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, dashboard, "")
}

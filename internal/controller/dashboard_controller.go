package controller

import (
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dashboard *service.DashboardService
}

func NewDashboardController(dashboard *service.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: dashboard}
}

// GetStats godoc
// @Summary Learning statistics for the current user
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.DashboardStats}
// @Router /api/dashboard/stats [get]
func (c *DashboardController) GetStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.Dashboard.GetStats(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// GetAdminStats godoc
// @Summary Platform statistics (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.AdminStats}
// @Router /api/admin/stats [get]
func (c *DashboardController) GetAdminStats(ctx *gin.Context) {
	stats, err := c.Dashboard.GetAdminStats(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

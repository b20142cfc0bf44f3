package controller

import (
	"daily_challenge_backend/internal/middleware"
	"daily_challenge_backend/internal/service"
	"daily_challenge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	ChartService     *service.ChartService
}

func NewDashboardController(dashboardService *service.DashboardService, chartService *service.ChartService) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
		ChartService:     chartService,
	}
}

// Stats godoc
// @Summary Dashboard header figures
// @Tags dashboard
// @Produce json
// @Success 200 {object} util.Response{data=service.DashboardStats}
// @Router /api/dashboard/stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	user := middleware.GetUserFromContext(ctx)
	stats, err := c.DashboardService.Stats(ctx.Request.Context(), user)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// Indicators godoc
// @Summary Completion indicators for today's challenges
// @Tags dashboard
// @Produce json
// @Success 200 {object} util.Response{data=service.ChallengeIndicators}
// @Router /api/dashboard/indicators [get]
func (c *DashboardController) Indicators(ctx *gin.Context) {
	user := middleware.GetUserFromContext(ctx)
	indicators, err := c.DashboardService.Indicators(ctx.Request.Context(), user)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, indicators)
}

// ScoreSeries godoc
// @Summary Score progression chart
// @Tags progress
// @Produce json
// @Success 200 {object} util.Response{data=service.ChartData}
// @Router /api/progress/score-series [get]
func (c *DashboardController) ScoreSeries(ctx *gin.Context) {
	user := middleware.GetUserFromContext(ctx)
	util.Success(ctx, c.ChartService.ScoreSeries(user))
}

// Distribution godoc
// @Summary Challenge type distribution chart
// @Tags progress
// @Produce json
// @Success 200 {object} util.Response{data=service.ChartData}
// @Router /api/progress/distribution [get]
func (c *DashboardController) Distribution(ctx *gin.Context) {
	user := middleware.GetUserFromContext(ctx)
	util.Success(ctx, c.ChartService.Distribution(user))
}

// RecentActivity godoc
// @Summary Recent activity list
// @Tags progress
// @Produce json
// @Success 200 {object} util.Response{data=[]service.ActivityItem}
// @Router /api/progress/activity [get]
func (c *DashboardController) RecentActivity(ctx *gin.Context) {
	user := middleware.GetUserFromContext(ctx)
	util.Success(ctx, c.ChartService.RecentActivity(user))
}

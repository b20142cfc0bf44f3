package controller

import (
	"errors"
	"net/http"
	"strconv"

	"daily_challenge_backend/internal/middleware"
	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/internal/service"
	"daily_challenge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService  *service.AdminService
	ExportService *service.ExportService
	ChartService  *service.ChartService
}

func NewAdminController(adminService *service.AdminService, exportService *service.ExportService, chartService *service.ChartService) *AdminController {
	return &AdminController{
		AdminService:  adminService,
		ExportService: exportService,
		ChartService:  chartService,
	}
}

// AddChallengeRequest is the admin challenge-creation form.
type AddChallengeRequest struct {
	Category   string   `json:"category" binding:"required"`
	Question   string   `json:"question" binding:"required"`
	Answer     string   `json:"answer" binding:"required"`
	Date       string   `json:"date" binding:"required"`
	Difficulty string   `json:"difficulty"`
	Options    []string `json:"options"`
}

// ChangeRoleRequest flips a user's role. Confirm stands in for the
// confirmation dialog; without it the request is rejected.
type ChangeRoleRequest struct {
	Role    string `json:"role" binding:"required"`
	Confirm bool   `json:"confirm"`
}

// AddChallenge godoc
// @Summary Create a challenge
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AddChallengeRequest true "challenge"
// @Success 201 {object} util.Response{data=model.Challenge}
// @Failure 400 {object} util.Response
// @Router /api/admin/challenges [post]
func (c *AdminController) AddChallenge(ctx *gin.Context) {
	var req AddChallengeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Please fill in all fields!")
		return
	}

	actor := middleware.GetUserFromContext(ctx)
	challenge, err := c.AdminService.AddChallenge(ctx.Request.Context(), actor, service.NewChallengeInput{
		Category:   model.ChallengeCategory(req.Category),
		Question:   req.Question,
		Answer:     req.Answer,
		Date:       req.Date,
		Difficulty: req.Difficulty,
		Options:    req.Options,
	})
	if err != nil {
		if errors.Is(err, util.ErrValidation) {
			util.BadRequest(ctx, "Please fill in all fields!")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, challenge)
}

// ListUsers godoc
// @Summary List users with their progress
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response{data=[]service.UserWithProgress}
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.AdminService.ListUsers(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// ChangeUserRole godoc
// @Summary Change a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "user id"
// @Param request body ChangeRoleRequest true "new role"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id}/role [put]
func (c *AdminController) ChangeUserRole(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid user id")
		return
	}

	var req ChangeRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid role request")
		return
	}

	actor := middleware.GetUserFromContext(ctx)
	updated, err := c.AdminService.ChangeUserRole(ctx.Request.Context(), actor, userID, model.UserRole(req.Role), req.Confirm)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, "Invalid role request")
		case errors.Is(err, util.ErrConfirmRequired):
			util.BadRequest(ctx, "Role change requires confirmation")
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, updated)
}

// ExportUsers godoc
// @Summary Download the user export
// @Description Streams the full user list, including progress, as a dated JSON file
// @Tags admin
// @Produce json
// @Success 200 {file} file
// @Router /api/admin/export/users [get]
func (c *AdminController) ExportUsers(ctx *gin.Context) {
	filename, body, err := c.ExportService.ExportUsers(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", "attachment; filename="+filename)
	ctx.Data(http.StatusOK, "application/json", body)
}

// StudentReports godoc
// @Summary Per-student activity reports
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response{data=[]service.StudentReport}
// @Router /api/admin/reports [get]
func (c *AdminController) StudentReports(ctx *gin.Context) {
	reports, err := c.AdminService.StudentReports(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, reports)
}

// Analytics godoc
// @Summary System analytics
// @Description Aggregate user and challenge figures plus the bar chart payload
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/admin/analytics [get]
func (c *AdminController) Analytics(ctx *gin.Context) {
	stats, err := c.AdminService.Analytics(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"stats": stats,
		"chart": c.ChartService.SystemChart(stats),
	})
}

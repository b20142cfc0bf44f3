package controller

import (
	"errors"
	"net/http"

	"daily_challenge_backend/internal/middleware"
	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/internal/service"
	"daily_challenge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	ChallengeService *service.ChallengeService
}

func NewChallengeController(challengeService *service.ChallengeService) *ChallengeController {
	return &ChallengeController{ChallengeService: challengeService}
}

// MCQSubmitRequest carries the selected option letter.
type MCQSubmitRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// CodeSubmitRequest carries the source to score.
type CodeSubmitRequest struct {
	Code string `json:"code" binding:"required"`
}

// RunCodeRequest carries the source for a dry run.
type RunCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// TodayPayload is the challenges page model: whichever of today's two
// challenges exist, plus the editor template for the coding side.
// swagger:model TodayPayload
type TodayPayload struct {
	Technical    *model.Challenge `json:"technical"`
	NonTechnical *model.Challenge `json:"nonTechnical"`
	CodeTemplate string           `json:"codeTemplate"`
}

// Today godoc
// @Summary Today's challenges
// @Description Returns today's technical and non-technical challenges, either of which may be absent
// @Tags challenges
// @Produce json
// @Success 200 {object} util.Response{data=TodayPayload}
// @Router /api/challenges/today [get]
func (c *ChallengeController) Today(ctx *gin.Context) {
	payload := &TodayPayload{CodeTemplate: service.DefaultCodeTemplate}

	technical, err := c.ChallengeService.Today(ctx.Request.Context(), model.CategoryTechnical)
	if err != nil && !errors.Is(err, util.ErrNoChallengeToday) {
		util.LogInternalError(ctx, err)
		return
	}
	payload.Technical = technical

	nonTechnical, err := c.ChallengeService.Today(ctx.Request.Context(), model.CategoryNonTechnical)
	if err != nil && !errors.Is(err, util.ErrNoChallengeToday) {
		util.LogInternalError(ctx, err)
		return
	}
	payload.NonTechnical = nonTechnical

	util.Success(ctx, payload)
}

// SubmitMCQ godoc
// @Summary Submit an MCQ answer
// @Description Scores the selected option against today's non-technical challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Param request body MCQSubmitRequest true "selected option"
// @Success 200 {object} util.Response{data=service.SubmissionResult}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/challenges/mcq/submit [post]
func (c *ChallengeController) SubmitMCQ(ctx *gin.Context) {
	var req MCQSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Please select an answer first!")
		return
	}

	user := middleware.GetUserFromContext(ctx)
	result, err := c.ChallengeService.SubmitMCQ(ctx.Request.Context(), user, req.Answer)
	if err != nil {
		c.submitError(ctx, err, "Please select an answer first!")
		return
	}
	util.Success(ctx, result)
}

// SubmitCode godoc
// @Summary Submit code for today's technical challenge
// @Description Runs the code and scores the output against the expected pattern
// @Tags challenges
// @Accept json
// @Produce json
// @Param request body CodeSubmitRequest true "source code"
// @Success 200 {object} util.Response{data=service.SubmissionResult}
// @Failure 404 {object} util.Response
// @Router /api/challenges/code/submit [post]
func (c *ChallengeController) SubmitCode(ctx *gin.Context) {
	var req CodeSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Please write some code first!")
		return
	}

	user := middleware.GetUserFromContext(ctx)
	result, err := c.ChallengeService.SubmitCode(ctx.Request.Context(), user, req.Code)
	if err != nil {
		c.submitError(ctx, err, "Please write some code first!")
		return
	}
	util.Success(ctx, result)
}

// RunCode godoc
// @Summary Dry-run code in the mock runner
// @Description Returns the simulated output without recording anything
// @Tags compiler
// @Accept json
// @Produce json
// @Param request body RunCodeRequest true "source code"
// @Success 200 {object} util.Response
// @Router /api/compiler/run [post]
func (c *ChallengeController) RunCode(ctx *gin.Context) {
	var req RunCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Please write some code first!")
		return
	}

	output, err := c.ChallengeService.RunCode(req.Code)
	if err != nil {
		util.BadRequest(ctx, "Please write some code first!")
		return
	}
	util.Success(ctx, gin.H{"output": output})
}

func (c *ChallengeController) submitError(ctx *gin.Context, err error, validationMsg string) {
	switch {
	case errors.Is(err, util.ErrValidation):
		util.BadRequest(ctx, validationMsg)
	case errors.Is(err, util.ErrNoChallengeToday):
		util.Error(ctx, http.StatusNotFound, "No challenge available for today")
	case errors.Is(err, util.ErrAlreadySubmitted):
		util.Error(ctx, http.StatusConflict, "You have already submitted an answer for today's challenge!")
	default:
		util.LogInternalError(ctx, err)
	}
}

package controller

import (
	"errors"

	"daily_challenge_backend/internal/service"
	"daily_challenge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PageController struct {
	Navigation *service.NavigationService
}

func NewPageController(navigation *service.NavigationService) *PageController {
	return &PageController{Navigation: navigation}
}

// Resolve godoc
// @Summary Resolve a page view
// @Description Applies the navigation visibility rules for the named page
// @Tags pages
// @Produce json
// @Param name path string true "page name"
// @Success 200 {object} util.Response{data=service.PageView}
// @Failure 404 {object} util.Response
// @Router /api/pages/{name} [get]
func (c *PageController) Resolve(ctx *gin.Context) {
	view, err := c.Navigation.Resolve(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		if errors.Is(err, util.ErrPageNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, view)
}

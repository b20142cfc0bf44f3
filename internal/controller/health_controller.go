package controller

import (
	"net/http"
	"time"

	"daily_challenge_backend/internal/store"
	"daily_challenge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Store store.Store
}

func NewHealthController(s store.Store) *HealthController {
	return &HealthController{Store: s}
}

// Check godoc
// @Summary Health check
// @Description Probes the backing store and reports service status
// @Tags health
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	if _, _, err := c.Store.Get(ctx.Request.Context(), store.KeyUsers); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	util.Success(ctx, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

package app

import (
	"daily_challenge_backend/docs"
	"daily_challenge_backend/internal/middleware"
	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/login", c.auth.Login)
		public.POST("/signup", c.auth.Signup)
		public.GET("/pages/:name", c.page.Resolve)
	}

	authorized := router.Group("/api")
	authorized.Use(middleware.SessionMiddleware(repos.session))
	{
		authorized.POST("/logout", c.auth.Logout)
		authorized.GET("/session", c.auth.Session)

		authorized.GET("/dashboard/stats", c.dashboard.Stats)
		authorized.GET("/dashboard/indicators", c.dashboard.Indicators)

		authorized.GET("/challenges/today", c.challenge.Today)
		authorized.POST("/challenges/mcq/submit", c.challenge.SubmitMCQ)
		authorized.POST("/challenges/code/submit", c.challenge.SubmitCode)
		authorized.POST("/compiler/run", c.challenge.RunCode)

		authorized.GET("/progress/score-series", c.dashboard.ScoreSeries)
		authorized.GET("/progress/distribution", c.dashboard.Distribution)
		authorized.GET("/progress/activity", c.dashboard.RecentActivity)

		admin := authorized.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.RoleAdmin))
		{
			admin.POST("/challenges", c.admin.AddChallenge)
			admin.GET("/users", c.admin.ListUsers)
			admin.PUT("/users/:id/role", c.admin.ChangeUserRole)
			admin.GET("/export/users", c.admin.ExportUsers)
			admin.GET("/reports", c.admin.StudentReports)
			admin.GET("/analytics", c.admin.Analytics)
		}
	}
}

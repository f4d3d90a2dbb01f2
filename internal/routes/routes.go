// Package routes defines HTTP routes for the registration service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/B01812625/sportgames/internal/config"
	"github.com/B01812625/sportgames/internal/handlers"
	"github.com/B01812625/sportgames/internal/middleware"
	"github.com/B01812625/sportgames/internal/service"
)

// Handlers bundles everything Setup wires into the router.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Competitions *handlers.CompetitionHandler
	Applications *handlers.ApplicationHandler
	Admin        *handlers.AdminHandler
	Health       *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, h Handlers, auth service.AuthService, cfg *config.Config) {
	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)
	router.Use(metrics.Collect())
	router.Use(middleware.CSRF(cfg.AllowedOrigins))

	router.GET("/health", h.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// Public surface
	v1.POST("/auth/register", h.Auth.Register)
	v1.POST("/auth/login", h.Auth.Login)
	v1.GET("/competitions", h.Competitions.List)
	v1.GET("/competitions/open", h.Competitions.ListOpen)
	v1.GET("/competitions/:id", h.Competitions.Get)

	// Authenticated surface
	user := v1.Group("", middleware.RequireLogin(auth))
	{
		user.POST("/auth/logout", h.Auth.Logout)
		user.GET("/auth/profile", h.Auth.Profile)
		user.DELETE("/auth/account", h.Auth.DeleteAccount)

		user.POST("/applications", h.Applications.Submit)
		user.GET("/applications", h.Applications.ListMine)
		user.GET("/applications/:id", h.Applications.Get)
		user.GET("/applications/:id/document", h.Applications.DownloadDocument)
	}

	// Admin surface
	admin := v1.Group("/admin", middleware.RequireLogin(auth), middleware.RequireAdmin())
	{
		admin.GET("/dashboard", h.Admin.Dashboard)
		admin.GET("/competitions", h.Admin.ListCompetitions)
		admin.POST("/competitions", h.Admin.CreateCompetition)
		admin.PUT("/competitions/:id", h.Admin.UpdateCompetition)
		admin.DELETE("/competitions/:id", h.Admin.DeleteCompetition)
		admin.GET("/applications", h.Admin.ListApplications)
		admin.POST("/applications/:id/review", h.Admin.ReviewApplication)
	}
}

package app

import (
	"github.com/gin-gonic/gin"
	"github.com/hardikidentixweb/inquiry-master/internal/middleware"
	"github.com/hardikidentixweb/inquiry-master/internal/modules/auth"
	"github.com/hardikidentixweb/inquiry-master/internal/modules/field"
	"github.com/hardikidentixweb/inquiry-master/internal/modules/health"
	"github.com/hardikidentixweb/inquiry-master/internal/modules/inquiry"
	"github.com/hardikidentixweb/inquiry-master/internal/modules/report"
	"github.com/hardikidentixweb/inquiry-master/internal/modules/settings"
	"github.com/hardikidentixweb/inquiry-master/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	authMW := middleware.Auth()
	adminMW := middleware.AdminOnly()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api")

	health.RegisterRoutes(api, db)

	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)
	field.NewHandler(field.NewService(db)).RegisterRoutes(api, authMW, adminMW)
	inquiry.NewHandler(inquiry.NewService(db)).RegisterRoutes(api, authMW)

	settingsSvc := settings.NewService(db)
	settings.NewHandler(settingsSvc).RegisterRoutes(api, authMW, adminMW)
	report.NewHandler(report.NewService(db), settingsSvc).RegisterRoutes(api, authMW)
}

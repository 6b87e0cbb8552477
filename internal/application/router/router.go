// Package router provides application module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/team_recruitment/internal/application/handler"
	"github.com/festy23/team_recruitment/internal/application/service"
)

// RegisterRoutes registers application module routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	apps := r.Group("/applications")
	apps.POST("", h.SubmitApplication)
	apps.GET("/:application_id", h.GetApplication)
	apps.POST("/:application_id/status", h.UpdateStatus)

	r.GET("/competitions/:competition_id/applications", h.ListApplications)
}

// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/team_recruitment/internal/team/handler"
	"github.com/festy23/team_recruitment/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	teams := r.Group("/teams")
	teams.POST("", h.CreateTeam)
	teams.GET("/:team_id", h.GetTeam)
	teams.GET("/:team_id/members", h.ListMembers)
	teams.PATCH("/:team_id/recruitment", h.UpdateRecruitment)
}

// Package router provides recruitment module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/team_recruitment/internal/recruitment/handler"
	"github.com/festy23/team_recruitment/internal/recruitment/service"
)

// RegisterRoutes registers recruitment module routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	teams := r.Group("/teams/:team_id")
	teams.POST("/invitations", h.CreateInvitation)
	teams.POST("/join-requests", h.CreateJoinRequest)
	teams.GET("/requests", h.ListTeamRequests)
	teams.GET("/requests/check", h.CheckExistingRequest)

	r.GET("/requests/mine", h.ListUserRequests)
	r.GET("/requests/:request_id", h.GetRequest)
	r.POST("/invitations/:request_id/respond", h.RespondToInvitation)
	r.POST("/join-requests/:request_id/respond", h.RespondToJoinRequest)
}

// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/team_recruitment/internal/httpx"
	"github.com/festy23/team_recruitment/internal/identity"
	"github.com/festy23/team_recruitment/internal/team/model"
	"github.com/festy23/team_recruitment/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeam handles POST /teams request.
// @Summary Create a team; the caller becomes its captain
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body model.CreateTeamRequest true "Request"
// @Success 201 {object} model.TeamResponse
// @Failure 400 {object} httpx.ErrorResponse "INVALID_NAME, INVALID_SLOTS, INVALID_REQUEST"
// @Failure 404 {object} httpx.ErrorResponse "COMPETITION_NOT_FOUND"
// @Router /teams [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateTeam(c *gin.Context) {
	actor, ok := identity.ActorFrom(c)
	if !ok {
		httpx.Unauthorized(c, "missing caller identity")
		return
	}

	var req model.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.CreateTeam(c.Request.Context(), actor, &req)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetTeam handles GET /teams/:team_id request.
// @Summary Get a team with its roster
// @Tags Teams
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} model.TeamResponse
// @Failure 404 {object} httpx.ErrorResponse "TEAM_NOT_FOUND"
// @Router /teams/{team_id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetTeam(c *gin.Context) {
	resp, err := h.service.GetTeam(c.Request.Context(), c.Param("team_id"))
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListMembers handles GET /teams/:team_id/members request.
// @Summary List team members, captain first
// @Tags Teams
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} model.MembersResponse
// @Failure 404 {object} httpx.ErrorResponse "TEAM_NOT_FOUND"
// @Router /teams/{team_id}/members [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListMembers(c *gin.Context) {
	teamID := c.Param("team_id")
	members, err := h.service.ListMembers(c.Request.Context(), teamID)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.MembersResponse{TeamID: teamID, Members: members})
}

// UpdateRecruitment handles PATCH /teams/:team_id/recruitment request.
// @Summary Change a team's recruitment settings (captain only)
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path string true "Team ID"
// @Param request body model.UpdateRecruitmentRequest true "Request"
// @Success 200 {object} model.Team
// @Failure 400 {object} httpx.ErrorResponse "INVALID_SLOTS"
// @Failure 403 {object} httpx.ErrorResponse "NOT_CAPTAIN"
// @Failure 404 {object} httpx.ErrorResponse "TEAM_NOT_FOUND"
// @Router /teams/{team_id}/recruitment [patch] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) UpdateRecruitment(c *gin.Context) {
	actor, ok := identity.ActorFrom(c)
	if !ok {
		httpx.Unauthorized(c, "missing caller identity")
		return
	}

	var req model.UpdateRecruitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "available_slots is required")
		return
	}

	team, err := h.service.UpdateRecruitment(c.Request.Context(), actor, c.Param("team_id"), &req)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

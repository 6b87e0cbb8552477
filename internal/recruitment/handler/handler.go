// Package handler provides HTTP handlers for recruitment endpoints.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/team_recruitment/internal/httpx"
	"github.com/festy23/team_recruitment/internal/identity"
	"github.com/festy23/team_recruitment/internal/recruitment/model"
	"github.com/festy23/team_recruitment/internal/recruitment/service"
)

// Handler handles HTTP requests for recruitment endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new recruitment handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

func (h *Handler) actor(c *gin.Context) (identity.Actor, bool) {
	actor, ok := identity.ActorFrom(c)
	if !ok {
		httpx.Unauthorized(c, "missing caller identity")
	}
	return actor, ok
}

// CreateInvitation handles POST /teams/:team_id/invitations request.
// @Summary Invite a user to the team (captain only)
// @Tags Recruitment
// @Accept json
// @Produce json
// @Param team_id path string true "Team ID"
// @Param request body model.CreateInvitationRequest true "Request"
// @Success 201 {object} model.Request
// @Failure 403 {object} httpx.ErrorResponse "NOT_CAPTAIN"
// @Failure 404 {object} httpx.ErrorResponse "TEAM_NOT_FOUND"
// @Failure 409 {object} httpx.ErrorResponse "ALREADY_MEMBER, DUPLICATE_REQUEST"
// @Router /teams/{team_id}/invitations [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateInvitation(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req model.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "user_id is required")
		return
	}

	created, err := h.service.CreateInvitation(c.Request.Context(), actor, c.Param("team_id"), &req)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CreateJoinRequest handles POST /teams/:team_id/join-requests request.
// @Summary Ask to join a recruiting team
// @Tags Recruitment
// @Accept json
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 201 {object} model.Request
// @Failure 400 {object} httpx.ErrorResponse "NOT_RECRUITING, COMPETITION_MISMATCH"
// @Failure 409 {object} httpx.ErrorResponse "ALREADY_MEMBER, DUPLICATE_REQUEST"
// @Router /teams/{team_id}/join-requests [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateJoinRequest(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req model.CreateJoinRequestRequest
	// The body is optional.
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, "invalid request body")
			return
		}
	}

	created, err := h.service.CreateJoinRequest(c.Request.Context(), actor, c.Param("team_id"), &req)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// RespondToInvitation handles POST /invitations/:request_id/respond request.
// @Summary Accept or reject an invitation (invitee or authority)
// @Tags Recruitment
// @Accept json
// @Produce json
// @Param request_id path string true "Request ID"
// @Param request body model.RespondRequest true "Request"
// @Success 200 {object} model.RespondResult
// @Failure 400 {object} httpx.ErrorResponse "INVALID_STATUS, INVALID_TRANSITION"
// @Failure 403 {object} httpx.ErrorResponse "FORBIDDEN"
// @Failure 409 {object} httpx.ErrorResponse "ALREADY_RESOLVED, NO_SLOTS_AVAILABLE, ALREADY_MEMBER"
// @Router /invitations/{request_id}/respond [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RespondToInvitation(c *gin.Context) {
	h.respond(c, h.service.RespondToInvitation)
}

// RespondToJoinRequest handles POST /join-requests/:request_id/respond request.
// @Summary Accept or reject a join-request (captain or authority)
// @Tags Recruitment
// @Accept json
// @Produce json
// @Param request_id path string true "Request ID"
// @Param request body model.RespondRequest true "Request"
// @Success 200 {object} model.RespondResult
// @Failure 409 {object} httpx.ErrorResponse "ALREADY_RESOLVED, NO_SLOTS_AVAILABLE, ALREADY_MEMBER"
// @Router /join-requests/{request_id}/respond [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RespondToJoinRequest(c *gin.Context) {
	h.respond(c, h.service.RespondToJoinRequest)
}

type respondFunc func(ctx context.Context, actor identity.Actor, requestID, status string) (*model.RespondResult, error)

func (h *Handler) respond(c *gin.Context, fn respondFunc) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req model.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "status is required")
		return
	}

	result, err := fn(c.Request.Context(), actor, c.Param("request_id"), req.Status)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CheckExistingRequest handles GET /teams/:team_id/requests/check request.
// @Summary Report membership and the pending request of a user for a team
// @Tags Recruitment
// @Produce json
// @Param team_id path string true "Team ID"
// @Param user_id query string false "User ID, defaults to the caller"
// @Success 200 {object} model.CheckResult
// @Failure 404 {object} httpx.ErrorResponse "TEAM_NOT_FOUND"
// @Router /teams/{team_id}/requests/check [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CheckExistingRequest(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		if actor, ok := identity.ActorFrom(c); ok {
			userID = actor.UserID
		}
	}

	result, err := h.service.CheckExistingRequest(c.Request.Context(), c.Param("team_id"), userID)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListTeamRequests handles GET /teams/:team_id/requests request.
// @Summary List a team's requests (captain or authority)
// @Tags Recruitment
// @Produce json
// @Param team_id path string true "Team ID"
// @Param status query string false "pending, accepted or rejected"
// @Success 200 {object} model.RequestsResponse
// @Failure 403 {object} httpx.ErrorResponse "FORBIDDEN"
// @Failure 404 {object} httpx.ErrorResponse "TEAM_NOT_FOUND"
// @Router /teams/{team_id}/requests [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListTeamRequests(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	reqs, err := h.service.ListTeamRequests(c.Request.Context(), actor, c.Param("team_id"), c.Query("status"))
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.RequestsResponse{Requests: reqs})
}

// ListUserRequests handles GET /requests/mine request.
// @Summary List the caller's invitations and join-requests
// @Tags Recruitment
// @Produce json
// @Param status query string false "pending, accepted or rejected"
// @Success 200 {object} model.RequestsResponse
// @Failure 400 {object} httpx.ErrorResponse "INVALID_STATUS"
// @Router /requests/mine [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListUserRequests(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	reqs, err := h.service.ListUserRequests(c.Request.Context(), actor, c.Query("status"))
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.RequestsResponse{Requests: reqs})
}

// GetRequest handles GET /requests/:request_id request.
// @Summary Get a request (prospective member, captain or authority)
// @Tags Recruitment
// @Produce json
// @Param request_id path string true "Request ID"
// @Success 200 {object} model.Request
// @Failure 403 {object} httpx.ErrorResponse "FORBIDDEN"
// @Failure 404 {object} httpx.ErrorResponse "REQUEST_NOT_FOUND"
// @Router /requests/{request_id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetRequest(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	req, err := h.service.GetRequest(c.Request.Context(), actor, c.Param("request_id"))
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

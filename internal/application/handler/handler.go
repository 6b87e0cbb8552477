// Package handler provides HTTP handlers for application endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/team_recruitment/internal/application/model"
	"github.com/festy23/team_recruitment/internal/application/service"
	"github.com/festy23/team_recruitment/internal/httpx"
	"github.com/festy23/team_recruitment/internal/identity"
)

// Handler handles HTTP requests for application endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new application handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SubmitApplication handles POST /applications request.
// @Summary Submit the team's application to its competition (captain only)
// @Tags Applications
// @Accept json
// @Produce json
// @Param request body model.SubmitApplicationRequest true "Request"
// @Success 201 {object} model.Application
// @Failure 403 {object} httpx.ErrorResponse "NOT_CAPTAIN"
// @Failure 409 {object} httpx.ErrorResponse "APPLICATION_EXISTS"
// @Router /applications [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) SubmitApplication(c *gin.Context) {
	actor, ok := identity.ActorFrom(c)
	if !ok {
		httpx.Unauthorized(c, "missing caller identity")
		return
	}

	var req model.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "team_id is required")
		return
	}

	app, err := h.service.SubmitApplication(c.Request.Context(), actor, &req)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// UpdateStatus handles POST /applications/:application_id/status request.
// @Summary Approve or reject an application (authority only)
// @Tags Applications
// @Accept json
// @Produce json
// @Param application_id path string true "Application ID"
// @Param request body model.UpdateStatusRequest true "Request"
// @Success 200 {object} model.ApplicationView
// @Failure 400 {object} httpx.ErrorResponse "INVALID_STATUS, INVALID_TRANSITION"
// @Failure 403 {object} httpx.ErrorResponse "FORBIDDEN"
// @Router /applications/{application_id}/status [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) UpdateStatus(c *gin.Context) {
	actor, ok := identity.ActorFrom(c)
	if !ok {
		httpx.Unauthorized(c, "missing caller identity")
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "status is required")
		return
	}

	view, err := h.service.UpdateStatus(c.Request.Context(), actor, c.Param("application_id"), req.Status)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetApplication handles GET /applications/:application_id request.
// @Summary Get an application with the team's roster (captain or authority)
// @Tags Applications
// @Produce json
// @Param application_id path string true "Application ID"
// @Success 200 {object} model.ApplicationView
// @Failure 403 {object} httpx.ErrorResponse "FORBIDDEN"
// @Failure 404 {object} httpx.ErrorResponse "APPLICATION_NOT_FOUND"
// @Router /applications/{application_id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetApplication(c *gin.Context) {
	actor, ok := identity.ActorFrom(c)
	if !ok {
		httpx.Unauthorized(c, "missing caller identity")
		return
	}

	view, err := h.service.GetApplication(c.Request.Context(), actor, c.Param("application_id"))
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListApplications handles GET /competitions/:competition_id/applications request.
// @Summary List a competition's applications (authority only)
// @Tags Applications
// @Produce json
// @Param competition_id path string true "Competition ID"
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} model.ApplicationsResponse
// @Failure 403 {object} httpx.ErrorResponse "FORBIDDEN"
// @Failure 404 {object} httpx.ErrorResponse "COMPETITION_NOT_FOUND"
// @Router /competitions/{competition_id}/applications [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListApplications(c *gin.Context) {
	actor, ok := identity.ActorFrom(c)
	if !ok {
		httpx.Unauthorized(c, "missing caller identity")
		return
	}

	competitionID := c.Param("competition_id")
	apps, err := h.service.ListApplications(c.Request.Context(), actor, competitionID, c.Query("status"))
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.ApplicationsResponse{CompetitionID: competitionID, Applications: apps})
}

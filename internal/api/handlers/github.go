package handlers

import (
	"context"
	"errors"
	"net/http"

	"client-portal-backend/internal/auth"
	"client-portal-backend/internal/config"
	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GitHubHandler handles HTTP requests for the GitHub App connector
type GitHubHandler struct {
	installationService service.InstallationServiceInterface
	activityService     service.ActivityServiceInterface
	cfg                 *config.Config
}

// NewGitHubHandler creates a new GitHub handler
func NewGitHubHandler(
	installationService service.InstallationServiceInterface,
	activityService service.ActivityServiceInterface,
	cfg *config.Config,
) *GitHubHandler {
	return &GitHubHandler{
		installationService: installationService,
		activityService:     activityService,
		cfg:                 cfg,
	}
}

// GetInstallation handles GET /api/v1/github/installation
// @Summary Get installation status
// @Description Report whether the principal has the GitHub App installed, with the install URL when not
// @Tags github
// @Accept json
// @Produce json
// @Success 200 {object} service.InstallationStatusResponse "Installation status"
// @Failure 401 {object} ErrorResponse "No valid session"
// @Security BearerAuth
// @Router /api/v1/github/installation [get]
func (h *GitHubHandler) GetInstallation(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	status, err := h.installationService.Status(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get installation status", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// SaveInstallation handles POST /api/v1/github/installation
// @Summary Record an installation
// @Description Record the installation the front end observed after the GitHub redirect
// @Tags github
// @Accept json
// @Produce json
// @Param request body service.SaveInstallationRequest true "Installation details"
// @Success 200 {object} service.InstallationStatusResponse "Installation recorded"
// @Failure 400 {object} ErrorResponse "Missing installation_id"
// @Failure 401 {object} ErrorResponse "No valid session"
// @Security BearerAuth
// @Router /api/v1/github/installation [post]
func (h *GitHubHandler) SaveInstallation(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.SaveInstallationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.InstallationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "installation_id is required"})
		return
	}

	status, err := h.installationService.Save(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save installation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// InstallationCallback handles GET /api/v1/github/callback
// @Summary GitHub App setup callback
// @Description Record the installation reported by GitHub's setup redirect and send the browser back to the dashboard
// @Tags github
// @Accept json
// @Produce json
// @Param installation_id query string true "Installation ID reported by GitHub"
// @Param setup_action query string false "Setup action reported by GitHub"
// @Success 302 {string} string "Redirect back to the front end"
// @Failure 401 {object} ErrorResponse "No valid session"
// @Security BearerAuth
// @Router /api/v1/github/callback [get]
func (h *GitHubHandler) InstallationCallback(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	installationID := c.Query("installation_id")
	setupAction := c.Query("setup_action")

	if err := h.installationService.HandleCallback(userID, installationID, setupAction); err != nil {
		if apperrors.IsValidation(err) {
			c.Redirect(http.StatusFound, h.cfg.FrontendURL+"/dev-update?error=missing_installation_id")
			return
		}
		c.Redirect(http.StatusFound, h.cfg.FrontendURL+"/dev-update?error=install_failed")
		return
	}

	c.Redirect(http.StatusFound, h.cfg.FrontendURL+"/dev-update?installed=true")
}

// WaitForInstallation handles GET /api/v1/github/installation/wait
// @Summary Await installation
// @Description Block until the principal's installation appears or the polling bounds are exhausted
// @Tags github
// @Accept json
// @Produce json
// @Success 200 {object} service.InstallationStatusResponse "Installation detected"
// @Failure 401 {object} ErrorResponse "No valid session"
// @Failure 504 {object} map[string]interface{} "Polling bounds exhausted without an installation"
// @Security BearerAuth
// @Router /api/v1/github/installation/wait [get]
func (h *GitHubHandler) WaitForInstallation(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	status, err := h.installationService.AwaitInstallation(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInstallTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"installed": false,
				"timed_out": true,
			})
			return
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Client went away; nothing useful to write
			c.Abort()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to wait for installation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// Activity handles GET /api/v1/github/activity
// @Summary Fetch development activity
// @Description Proxy an activity query to the activity-tracking backend
// @Tags github
// @Accept json
// @Produce json
// @Param period query string false "Aggregation period (week, month, all)" default(week)
// @Param repository query string false "Repository filter"
// @Success 200 {object} map[string]interface{} "Activity data from the upstream backend"
// @Failure 401 {object} ErrorResponse "No valid session"
// @Failure 502 {object} ErrorResponse "Upstream backend unavailable"
// @Security BearerAuth
// @Router /api/v1/github/activity [get]
func (h *GitHubHandler) Activity(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok || email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	period := c.DefaultQuery("period", "week")
	repository := c.Query("repository")

	body, contentType, err := h.activityService.FetchActivity(c.Request.Context(), email, period, repository)
	if err != nil {
		if errors.Is(err, apperrors.ErrActivityNotConfigured) {
			c.JSON(http.StatusNotImplemented, gin.H{"error": "Activity tracking is not configured"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Activity backend unavailable"})
		return
	}

	c.Data(http.StatusOK, contentType, body)
}

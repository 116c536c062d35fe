package handlers

import (
	"errors"
	"net/http"

	"client-portal-backend/internal/auth"
	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team invitations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// DeleteTeamMemberBody represents the expected request body for DELETE /user/team-members
type DeleteTeamMemberBody struct {
	InvitationID string `json:"invitationId" binding:"required,uuid"`
}

// ListTeamMembers handles GET /api/v1/user/team-members
// @Summary List team invitations
// @Description Get the invitations issued by the signed-in principal
// @Tags team
// @Accept json
// @Produce json
// @Success 200 {object} service.TeamMembersResponse "Invitations issued by the principal"
// @Failure 401 {object} ErrorResponse "No valid session"
// @Failure 403 {object} ErrorResponse "Principal is not whitelisted"
// @Security BearerAuth
// @Router /api/v1/user/team-members [get]
func (h *TeamHandler) ListTeamMembers(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	email, _ := auth.GetUserEmail(c)

	resp, err := h.teamService.ListInvitations(userID, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotWhitelisted) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access not granted"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list team members", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteTeamMember handles DELETE /api/v1/user/team-members
// @Summary Revoke a team invitation
// @Description Delete an invitation. Only the inviter may delete it.
// @Tags team
// @Accept json
// @Produce json
// @Param request body DeleteTeamMemberBody true "Invitation to revoke"
// @Success 200 {object} map[string]interface{} "Invitation revoked"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "No valid session"
// @Failure 403 {object} ErrorResponse "Not the invitation owner"
// @Failure 404 {object} ErrorResponse "Invitation not found"
// @Security BearerAuth
// @Router /api/v1/user/team-members [delete]
func (h *TeamHandler) DeleteTeamMember(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	email, _ := auth.GetUserEmail(c)

	var body DeleteTeamMemberBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	invitationID, err := uuid.Parse(body.InvitationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	if err := h.teamService.DeleteInvitation(userID, email, invitationID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotWhitelisted), errors.Is(err, apperrors.ErrNotInvitationOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access not granted"})
		case errors.Is(err, apperrors.ErrInvitationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invitation", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

package handlers

import (
	"net/http"

	"client-portal-backend/internal/auth"
	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WhitelistHandler handles HTTP requests for the access gate
type WhitelistHandler struct {
	whitelistService service.WhitelistServiceInterface
}

// NewWhitelistHandler creates a new whitelist handler
func NewWhitelistHandler(whitelistService service.WhitelistServiceInterface) *WhitelistHandler {
	return &WhitelistHandler{
		whitelistService: whitelistService,
	}
}

// Check handles GET /api/v1/whitelist/check
// @Summary Check access for the signed-in principal
// @Description Decide whether the principal is whitelisted and whether onboarding is complete
// @Tags whitelist
// @Accept json
// @Produce json
// @Success 200 {object} service.AccessDecision "Access decision"
// @Failure 401 {object} ErrorResponse "No valid session"
// @Security BearerAuth
// @Router /api/v1/whitelist/check [get]
func (h *WhitelistHandler) Check(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok || email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, h.whitelistService.CheckAccess(email))
}

// UserData handles GET /api/v1/whitelist/user-data
// @Summary Get startup details for the onboarding confirmation screen
// @Description Return the startup fields configured for the principal's whitelist entry
// @Tags whitelist
// @Accept json
// @Produce json
// @Success 200 {object} service.UserDataResponse "Configured startup details"
// @Failure 401 {object} ErrorResponse "No valid session"
// @Failure 404 {object} ErrorResponse "No entry configured yet"
// @Security BearerAuth
// @Router /api/v1/whitelist/user-data [get]
func (h *WhitelistHandler) UserData(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok || email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	data, err := h.whitelistService.GetUserData(email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No startup details configured yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load startup details", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}

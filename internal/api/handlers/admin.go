package handlers

import (
	"net/http"

	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles HTTP requests for the admin whitelist console
type AdminHandler struct {
	whitelistService service.WhitelistServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(whitelistService service.WhitelistServiceInterface) *AdminHandler {
	return &AdminHandler{
		whitelistService: whitelistService,
	}
}

// ListWhitelist handles GET /api/v1/admin/whitelist
// @Summary List whitelist entries
// @Description Get every allow-list entry, newest first
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Admin-Password header string true "Admin console password"
// @Success 200 {object} service.WhitelistListResponse "All entries"
// @Failure 401 {object} ErrorResponse "Invalid admin password"
// @Router /api/v1/admin/whitelist [get]
func (h *AdminHandler) ListWhitelist(c *gin.Context) {
	resp, err := h.whitelistService.ListEntries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list whitelist entries", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpsertWhitelist handles POST /api/v1/admin/whitelist
// @Summary Add or replace a whitelist entry
// @Description Upsert an entry by email. New entries default to whitelisted with onboarding incomplete.
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Admin-Password header string true "Admin console password"
// @Param request body service.UpsertWhitelistRequest true "Entry fields"
// @Success 200 {object} service.WhitelistEntryResponse "Stored entry"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid admin password"
// @Router /api/v1/admin/whitelist [post]
func (h *AdminHandler) UpsertWhitelist(c *gin.Context) {
	var req service.UpsertWhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.whitelistService.UpsertEntry(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ToggleWhitelist handles PATCH /api/v1/admin/whitelist
// @Summary Toggle a whitelist entry
// @Description Flip the is_whitelisted flag of an existing entry
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Admin-Password header string true "Admin console password"
// @Param request body service.ToggleWhitelistRequest true "Email and new flag"
// @Success 200 {object} service.WhitelistEntryResponse "Updated entry"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid admin password"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Router /api/v1/admin/whitelist [patch]
func (h *AdminHandler) ToggleWhitelist(c *gin.Context) {
	var req service.ToggleWhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.whitelistService.SetWhitelisted(&req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Whitelist entry not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

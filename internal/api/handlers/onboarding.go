package handlers

import (
	"errors"
	"net/http"

	"client-portal-backend/internal/auth"
	"client-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// OnboardingHandler handles HTTP requests for onboarding completion
type OnboardingHandler struct {
	onboardingService service.OnboardingServiceInterface
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(onboardingService service.OnboardingServiceInterface) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingService: onboardingService,
	}
}

// Complete handles POST /api/v1/onboarding/complete
// @Summary Complete onboarding
// @Description Persist the confirmed startup details, mark the principal onboarded and invite same-domain teammates
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body service.CompleteOnboardingRequest true "Confirmed startup details and teammates"
// @Success 200 {object} service.CompleteOnboardingResponse "Onboarding completed"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "No valid session"
// @Security BearerAuth
// @Router /api/v1/onboarding/complete [post]
func (h *OnboardingHandler) Complete(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	email, ok := auth.GetUserEmail(c)
	if !ok || email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CompleteOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.onboardingService.Complete(userID, email, &req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete onboarding", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

package service

import (
	"fmt"
	"strings"

	"client-portal-backend/internal/database/models"
	"client-portal-backend/internal/logger"
	"client-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OnboardingService finalizes the multi-step onboarding flow
type OnboardingService struct {
	profileRepo    repository.UserProfileRepositoryInterface
	whitelistRepo  repository.WhitelistRepositoryInterface
	invitationRepo repository.TeamInvitationRepositoryInterface
	validator      *validator.Validate
	log            *logger.Logger
}

// Ensure OnboardingService implements OnboardingServiceInterface
var _ OnboardingServiceInterface = (*OnboardingService)(nil)

// NewOnboardingService creates a new OnboardingService
func NewOnboardingService(
	profileRepo repository.UserProfileRepositoryInterface,
	whitelistRepo repository.WhitelistRepositoryInterface,
	invitationRepo repository.TeamInvitationRepositoryInterface,
	validator *validator.Validate,
) *OnboardingService {
	return &OnboardingService{
		profileRepo:    profileRepo,
		whitelistRepo:  whitelistRepo,
		invitationRepo: invitationRepo,
		validator:      validator,
		log:            logger.New(),
	}
}

// TeamMemberInput is one teammate named during the TEAM_ACCESS step
type TeamMemberInput struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Role  string `json:"role" validate:"required,oneof=viewer admin"`
}

// CompleteOnboardingRequest carries the confirmed startup details and the
// teammates to invite
type CompleteOnboardingRequest struct {
	StartupName      string            `json:"startupName" validate:"max=200"`
	HasLaunchedToken bool              `json:"hasLaunchedToken"`
	TeamMembers      []TeamMemberInput `json:"teamMembers" validate:"dive"`
}

// CompleteOnboardingResponse reports what the completion pass achieved
type CompleteOnboardingResponse struct {
	Success bool `json:"success"`
	Invited int  `json:"invited"`
	Skipped int  `json:"skipped"`
}

// Complete runs the onboarding completion sequence. Each step is best-effort:
// a failed profile upsert, whitelist update, or invitation insert is logged
// and the remaining steps still run, so a partial outage never strands the
// principal on the onboarding screen.
func (s *OnboardingService) Complete(userID uuid.UUID, email string, req *CompleteOnboardingRequest) (*CompleteOnboardingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email = normalizeEmail(email)
	log := s.log.WithField("user", email)

	profile := &models.UserProfile{
		UserID:             userID,
		Email:              email,
		StartupName:        req.StartupName,
		HasLaunchedToken:   req.HasLaunchedToken,
		OnboardingComplete: true,
	}
	if err := s.profileRepo.Upsert(profile); err != nil {
		log.WithError(err).Error("failed to upsert user profile during onboarding completion")
	}

	if err := s.whitelistRepo.SetOnboardingComplete(email); err != nil {
		log.WithError(err).Error("failed to mark whitelist entry onboarding_complete")
	}

	domain := emailDomain(email)
	invited, skipped := 0, 0
	for _, member := range req.TeamMembers {
		memberEmail := normalizeEmail(member.Email)
		if memberEmail == "" || memberEmail == email {
			skipped++
			continue
		}
		if emailDomain(memberEmail) != domain {
			log.WithField("invitee", memberEmail).Info("skipping invitation outside the principal's domain")
			skipped++
			continue
		}

		invitation := &models.TeamInvitation{
			Email:     memberEmail,
			Role:      models.InvitationRole(member.Role),
			InvitedBy: userID,
			Domain:    domain,
			Status:    models.InvitationStatusPending,
		}
		if err := s.invitationRepo.Create(invitation); err != nil {
			log.WithField("invitee", memberEmail).WithError(err).Error("failed to create team invitation")
			skipped++
			continue
		}
		invited++
	}

	return &CompleteOnboardingResponse{Success: true, Invited: invited, Skipped: skipped}, nil
}

// emailDomain returns the part after the last '@', lowercased
func emailDomain(email string) string {
	idx := strings.LastIndex(email, "@")
	if idx < 0 || idx == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[idx+1:])
}

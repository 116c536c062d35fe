package service

import (
	"errors"
	"fmt"
	"time"

	"client-portal-backend/internal/database/models"
	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService exposes the invitations a principal has issued
type TeamService struct {
	invitationRepo repository.TeamInvitationRepositoryInterface
	whitelistRepo  repository.WhitelistRepositoryInterface
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new TeamService
func NewTeamService(
	invitationRepo repository.TeamInvitationRepositoryInterface,
	whitelistRepo repository.WhitelistRepositoryInterface,
) *TeamService {
	return &TeamService{
		invitationRepo: invitationRepo,
		whitelistRepo:  whitelistRepo,
	}
}

// TeamMemberResponse represents a single invitation in API responses
type TeamMemberResponse struct {
	ID        uuid.UUID               `json:"id"`
	Email     string                  `json:"email"`
	Role      models.InvitationRole   `json:"role"`
	Status    models.InvitationStatus `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
}

// TeamMembersResponse represents all invitations issued by one principal
type TeamMembersResponse struct {
	Members []TeamMemberResponse `json:"members"`
	Total   int                  `json:"total"`
}

// ListInvitations returns the invitations issued by the principal. Only
// whitelisted principals may read them.
func (s *TeamService) ListInvitations(userID uuid.UUID, email string) (*TeamMembersResponse, error) {
	if err := s.requireWhitelisted(email); err != nil {
		return nil, err
	}

	invitations, err := s.invitationRepo.GetByInviter(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	members := make([]TeamMemberResponse, len(invitations))
	for i, inv := range invitations {
		members[i] = TeamMemberResponse{
			ID:        inv.ID,
			Email:     inv.Email,
			Role:      inv.Role,
			Status:    inv.Status,
			CreatedAt: inv.CreatedAt,
		}
	}

	return &TeamMembersResponse{Members: members, Total: len(members)}, nil
}

// DeleteInvitation removes an invitation. Only the inviter may delete it.
func (s *TeamService) DeleteInvitation(userID uuid.UUID, email string, invitationID uuid.UUID) error {
	if err := s.requireWhitelisted(email); err != nil {
		return err
	}

	invitation, err := s.invitationRepo.GetByID(invitationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvitationNotFound
		}
		return fmt.Errorf("failed to load invitation: %w", err)
	}

	if invitation.InvitedBy != userID {
		return apperrors.ErrNotInvitationOwner
	}

	if err := s.invitationRepo.Delete(invitationID); err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}

	return nil
}

func (s *TeamService) requireWhitelisted(email string) error {
	entry, err := s.whitelistRepo.GetByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotWhitelisted
		}
		return fmt.Errorf("failed to check whitelist: %w", err)
	}
	if !entry.IsWhitelisted {
		return apperrors.ErrNotWhitelisted
	}
	return nil
}

package repository

import (
	"client-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamInvitationRepository handles database operations for team invitations
type TeamInvitationRepository struct {
	db *gorm.DB
}

// NewTeamInvitationRepository creates a new team invitation repository
func NewTeamInvitationRepository(db *gorm.DB) *TeamInvitationRepository {
	return &TeamInvitationRepository{db: db}
}

// Create creates a new invitation
func (r *TeamInvitationRepository) Create(invitation *models.TeamInvitation) error {
	return r.db.Create(invitation).Error
}

// GetByID retrieves an invitation by ID
func (r *TeamInvitationRepository) GetByID(id uuid.UUID) (*models.TeamInvitation, error) {
	var invitation models.TeamInvitation
	err := r.db.First(&invitation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetByInviter retrieves all invitations created by a user, newest first
func (r *TeamInvitationRepository) GetByInviter(invitedBy uuid.UUID) ([]models.TeamInvitation, error) {
	var invitations []models.TeamInvitation
	err := r.db.Where("invited_by = ?", invitedBy).
		Order("created_at DESC").
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

// Delete removes an invitation
func (r *TeamInvitationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamInvitation{}, "id = ?", id).Error
}

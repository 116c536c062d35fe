package repository

import (
	"time"

	"client-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GitHubInstallationRepository handles database operations for App installations
type GitHubInstallationRepository struct {
	db *gorm.DB
}

// NewGitHubInstallationRepository creates a new installation repository
func NewGitHubInstallationRepository(db *gorm.DB) *GitHubInstallationRepository {
	return &GitHubInstallationRepository{db: db}
}

// GetByUserID retrieves the installation linked to a user
func (r *GitHubInstallationRepository) GetByUserID(userID uuid.UUID) (*models.GitHubInstallation, error) {
	var installation models.GitHubInstallation
	err := r.db.First(&installation, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &installation, nil
}

// Upsert inserts or updates an installation keyed by user
func (r *GitHubInstallationRepository) Upsert(installation *models.GitHubInstallation) error {
	installation.UpdatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"installation_id",
			"account",
			"updated_at",
		}),
	}).Create(installation).Error
}

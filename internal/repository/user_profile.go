package repository

import (
	"time"

	"client-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserProfileRepository handles database operations for user profiles
type UserProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository creates a new user profile repository
func NewUserProfileRepository(db *gorm.DB) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

// GetByUserID retrieves a profile by its owning user
func (r *UserProfileRepository) GetByUserID(userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert inserts or updates a profile keyed by user
func (r *UserProfileRepository) Upsert(profile *models.UserProfile) error {
	profile.UpdatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email",
			"startup_name",
			"has_launched_token",
			"onboarding_complete",
			"updated_at",
		}),
	}).Create(profile).Error
}

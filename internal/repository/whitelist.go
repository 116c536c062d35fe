package repository

import (
	"time"

	"client-portal-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WhitelistRepository handles database operations for the allow-list
type WhitelistRepository struct {
	db *gorm.DB
}

// NewWhitelistRepository creates a new whitelist repository
func NewWhitelistRepository(db *gorm.DB) *WhitelistRepository {
	return &WhitelistRepository{db: db}
}

// GetByEmail retrieves an allow-list entry by email
func (r *WhitelistRepository) GetByEmail(email string) (*models.WhitelistEntry, error) {
	var entry models.WhitelistEntry
	err := r.db.First(&entry, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetAll retrieves all allow-list entries, newest first
func (r *WhitelistRepository) GetAll() ([]models.WhitelistEntry, error) {
	var entries []models.WhitelistEntry
	if err := r.db.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Upsert inserts an entry keyed by email or, on conflict, overrides only the
// named columns of the stored row. Columns not listed keep their stored
// values; updated_at is always written. A repeated upsert for the same email
// leaves exactly one row.
func (r *WhitelistRepository) Upsert(entry *models.WhitelistEntry, overrides []string) error {
	entry.UpdatedAt = time.Now()
	columns := append([]string{"updated_at"}, overrides...)
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(entry).Error
}

// SetWhitelisted toggles the gate flag for an existing entry and returns the
// updated row. gorm.ErrRecordNotFound when no entry matched the email.
func (r *WhitelistRepository) SetWhitelisted(email string, whitelisted bool) (*models.WhitelistEntry, error) {
	result := r.db.Model(&models.WhitelistEntry{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"is_whitelisted": whitelisted,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByEmail(email)
}

// SetOnboardingComplete marks onboarding finished for the matching email
func (r *WhitelistRepository) SetOnboardingComplete(email string) error {
	return r.db.Model(&models.WhitelistEntry{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"onboarding_complete": true,
			"updated_at":          time.Now(),
		}).Error
}

package models

import "github.com/google/uuid"

// UserProfile stores the startup details confirmed during onboarding.
// Upserted by the onboarding completion handler, keyed by user.
type UserProfile struct {
	BaseModel
	UserID             uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Email              string    `json:"email" gorm:"not null;size:255" validate:"required,email,max=255"`
	StartupName        string    `json:"startup_name" gorm:"size:200"`
	HasLaunchedToken   bool      `json:"has_launched_token" gorm:"not null;default:false"`
	OnboardingComplete bool      `json:"onboarding_complete" gorm:"not null;default:false"`
}

// TableName returns the table name for UserProfile
func (UserProfile) TableName() string {
	return "user_profiles"
}

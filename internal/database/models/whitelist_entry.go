package models

// WhitelistEntry is one row of the product allow-list, keyed by email.
// An email is either absent (rejected), present and not whitelisted (rejected
// with a contact path), or whitelisted, in which case OnboardingComplete
// decides whether the principal lands in onboarding or on the dashboard.
// Rows are only ever upserted or toggled, never hard-deleted by the flows.
type WhitelistEntry struct {
	BaseModel
	Email              string  `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	IsWhitelisted      bool    `json:"is_whitelisted" gorm:"not null;default:false"`
	OnboardingComplete bool    `json:"onboarding_complete" gorm:"not null;default:false"`
	StartupName        *string `json:"startup_name,omitempty" gorm:"size:200"`
	HasLaunchedToken   *bool   `json:"has_launched_token,omitempty"`
	HasLiveToken       *bool   `json:"has_live_token,omitempty"`
	TokenContract      *string `json:"token_contract,omitempty" gorm:"size:100"`
}

// TableName returns the table name for WhitelistEntry
func (WhitelistEntry) TableName() string {
	return "whitelist"
}

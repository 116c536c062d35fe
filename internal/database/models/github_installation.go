package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// GitHubInstallation records the GitHub App installation linked to a user.
// One row per user, upserted whenever the callback or the save endpoint fires.
// Account holds the raw {login, type} object reported by GitHub.
type GitHubInstallation struct {
	BaseModel
	UserID         uuid.UUID       `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	InstallationID string          `json:"installation_id" gorm:"not null;size:50" validate:"required"`
	Account        json.RawMessage `json:"account,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for GitHubInstallation
func (GitHubInstallation) TableName() string {
	return "github_installations"
}

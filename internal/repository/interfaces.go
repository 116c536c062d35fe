package repository

import (
	"client-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user storage
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdatePassword(id uuid.UUID, passwordHash string) error
}

// WhitelistRepositoryInterface defines the interface for allow-list storage
type WhitelistRepositoryInterface interface {
	GetByEmail(email string) (*models.WhitelistEntry, error)
	GetAll() ([]models.WhitelistEntry, error)
	Upsert(entry *models.WhitelistEntry, overrides []string) error
	SetWhitelisted(email string, whitelisted bool) (*models.WhitelistEntry, error)
	SetOnboardingComplete(email string) error
}

// UserProfileRepositoryInterface defines the interface for user profile storage
type UserProfileRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) (*models.UserProfile, error)
	Upsert(profile *models.UserProfile) error
}

// TeamInvitationRepositoryInterface defines the interface for invitation storage
type TeamInvitationRepositoryInterface interface {
	Create(invitation *models.TeamInvitation) error
	GetByID(id uuid.UUID) (*models.TeamInvitation, error)
	GetByInviter(invitedBy uuid.UUID) ([]models.TeamInvitation, error)
	Delete(id uuid.UUID) error
}

// GitHubInstallationRepositoryInterface defines the interface for installation storage
type GitHubInstallationRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) (*models.GitHubInstallation, error)
	Upsert(installation *models.GitHubInstallation) error
}

package testutils

import (
	"encoding/json"
	"time"

	"client-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:         "founder-" + id.String()[:8] + "@startup.dev",
		PasswordHash:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Name:          "Test Founder",
		Provider:      models.AuthProviderLocal,
		EmailVerified: true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithProvider sets a custom auth provider for the user
func (f *UserFactory) WithProvider(provider models.AuthProvider) *models.User {
	user := f.Create()
	user.Provider = provider
	user.PasswordHash = ""
	return user
}

// WhitelistFactory provides methods to create test WhitelistEntry data
type WhitelistFactory struct{}

// NewWhitelistFactory creates a new WhitelistFactory
func NewWhitelistFactory() *WhitelistFactory {
	return &WhitelistFactory{}
}

// Create creates a whitelisted test entry with onboarding incomplete
func (f *WhitelistFactory) Create() *models.WhitelistEntry {
	id := uuid.New()
	startupName := "Test Startup"
	hasLaunched := true
	return &models.WhitelistEntry{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:              "founder-" + id.String()[:8] + "@startup.dev",
		IsWhitelisted:      true,
		OnboardingComplete: false,
		StartupName:        &startupName,
		HasLaunchedToken:   &hasLaunched,
	}
}

// WithEmail sets a custom email for the entry
func (f *WhitelistFactory) WithEmail(email string) *models.WhitelistEntry {
	entry := f.Create()
	entry.Email = email
	return entry
}

// NotWhitelisted creates an entry that is present but rejected
func (f *WhitelistFactory) NotWhitelisted(email string) *models.WhitelistEntry {
	entry := f.WithEmail(email)
	entry.IsWhitelisted = false
	return entry
}

// Onboarded creates a whitelisted entry with onboarding complete
func (f *WhitelistFactory) Onboarded(email string) *models.WhitelistEntry {
	entry := f.WithEmail(email)
	entry.OnboardingComplete = true
	return entry
}

// ProfileFactory provides methods to create test UserProfile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test UserProfile with default values
func (f *ProfileFactory) Create() *models.UserProfile {
	id := uuid.New()
	return &models.UserProfile{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:             uuid.New(),
		Email:              "founder-" + id.String()[:8] + "@startup.dev",
		StartupName:        "Test Startup",
		HasLaunchedToken:   true,
		OnboardingComplete: true,
	}
}

// WithUser sets the owning user for the profile
func (f *ProfileFactory) WithUser(userID uuid.UUID, email string) *models.UserProfile {
	profile := f.Create()
	profile.UserID = userID
	profile.Email = email
	return profile
}

// InvitationFactory provides methods to create test TeamInvitation data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a pending viewer invitation with default values
func (f *InvitationFactory) Create() *models.TeamInvitation {
	id := uuid.New()
	return &models.TeamInvitation{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:     "teammate-" + id.String()[:8] + "@startup.dev",
		Role:      models.InvitationRoleViewer,
		InvitedBy: uuid.New(),
		Domain:    "startup.dev",
		Status:    models.InvitationStatusPending,
	}
}

// WithInviter sets the inviter and domain for the invitation
func (f *InvitationFactory) WithInviter(invitedBy uuid.UUID, domain string) *models.TeamInvitation {
	invitation := f.Create()
	invitation.InvitedBy = invitedBy
	invitation.Domain = domain
	invitation.Email = "teammate-" + invitation.ID.String()[:8] + "@" + domain
	return invitation
}

// WithRole sets a custom role for the invitation
func (f *InvitationFactory) WithRole(role models.InvitationRole) *models.TeamInvitation {
	invitation := f.Create()
	invitation.Role = role
	return invitation
}

// InstallationFactory provides methods to create test GitHubInstallation data
type InstallationFactory struct{}

// NewInstallationFactory creates a new InstallationFactory
func NewInstallationFactory() *InstallationFactory {
	return &InstallationFactory{}
}

// Create creates a test GitHubInstallation with default values
func (f *InstallationFactory) Create() *models.GitHubInstallation {
	account, _ := json.Marshal(map[string]string{"login": "test-org", "type": "Organization"})
	return &models.GitHubInstallation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:         uuid.New(),
		InstallationID: "12345678",
		Account:        account,
	}
}

// WithUser sets the owning user for the installation
func (f *InstallationFactory) WithUser(userID uuid.UUID) *models.GitHubInstallation {
	installation := f.Create()
	installation.UserID = userID
	return installation
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Whitelist    *WhitelistFactory
	Profile      *ProfileFactory
	Invitation   *InvitationFactory
	Installation *InstallationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Whitelist:    NewWhitelistFactory(),
		Profile:      NewProfileFactory(),
		Invitation:   NewInvitationFactory(),
		Installation: NewInstallationFactory(),
	}
}

package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// WhitelistServiceInterface defines the interface for the access gate and admin console
type WhitelistServiceInterface interface {
	CheckAccess(email string) *AccessDecision
	GetUserData(email string) (*UserDataResponse, error)
	ListEntries() (*WhitelistListResponse, error)
	UpsertEntry(req *UpsertWhitelistRequest) (*WhitelistEntryResponse, error)
	SetWhitelisted(req *ToggleWhitelistRequest) (*WhitelistEntryResponse, error)
}

// OnboardingServiceInterface defines the interface for onboarding completion
type OnboardingServiceInterface interface {
	Complete(userID uuid.UUID, email string, req *CompleteOnboardingRequest) (*CompleteOnboardingResponse, error)
}

// TeamServiceInterface defines the interface for team invitation access
type TeamServiceInterface interface {
	ListInvitations(userID uuid.UUID, email string) (*TeamMembersResponse, error)
	DeleteInvitation(userID uuid.UUID, email string, invitationID uuid.UUID) error
}

// InstallationServiceInterface defines the interface for GitHub App installation tracking
type InstallationServiceInterface interface {
	Status(userID uuid.UUID) (*InstallationStatusResponse, error)
	Save(userID uuid.UUID, req *SaveInstallationRequest) (*InstallationStatusResponse, error)
	HandleCallback(userID uuid.UUID, installationID, setupAction string) error
	AwaitInstallation(ctx context.Context, userID uuid.UUID) (*InstallationStatusResponse, error)
}

// ActivityServiceInterface defines the interface for the activity backend proxy
type ActivityServiceInterface interface {
	FetchActivity(ctx context.Context, userEmail, period, repository string) ([]byte, string, error)
}

package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"client-portal-backend/internal/database/models"
	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/logger"
	"client-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Route tells the front end where a signed-in principal belongs
type Route string

const (
	RouteNotWhitelisted Route = "not-whitelisted"
	RouteOnboarding     Route = "onboarding"
	RouteDashboard      Route = "dashboard"
)

// AccessDecision is the gate verdict for one principal
type AccessDecision struct {
	Whitelisted        bool  `json:"whitelisted"`
	OnboardingComplete bool  `json:"onboarding_complete"`
	Route              Route `json:"route"`
}

// WhitelistService provides the access gate and the admin console operations
type WhitelistService struct {
	repo      repository.WhitelistRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// Ensure WhitelistService implements WhitelistServiceInterface
var _ WhitelistServiceInterface = (*WhitelistService)(nil)

// NewWhitelistService creates a new WhitelistService
func NewWhitelistService(repo repository.WhitelistRepositoryInterface, validator *validator.Validate) *WhitelistService {
	return &WhitelistService{
		repo:      repo,
		validator: validator,
		log:       logger.New(),
	}
}

// WhitelistEntryResponse represents a single allow-list entry in API responses
type WhitelistEntryResponse struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	IsWhitelisted      bool      `json:"is_whitelisted"`
	OnboardingComplete bool      `json:"onboarding_complete"`
	StartupName        *string   `json:"startup_name,omitempty"`
	HasLaunchedToken   *bool     `json:"has_launched_token,omitempty"`
	HasLiveToken       *bool     `json:"has_live_token,omitempty"`
	TokenContract      *string   `json:"token_contract,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// WhitelistListResponse represents all allow-list entries, newest first
type WhitelistListResponse struct {
	Entries []WhitelistEntryResponse `json:"entries"`
	Total   int                      `json:"total"`
}

// UserDataResponse holds the startup fields shown on the onboarding confirmation screen
type UserDataResponse struct {
	Email            string  `json:"email"`
	StartupName      *string `json:"startup_name"`
	HasLaunchedToken *bool   `json:"has_launched_token"`
	HasLiveToken     *bool   `json:"has_live_token"`
	TokenContract    *string `json:"token_contract"`
}

// UpsertWhitelistRequest represents the admin request to add or replace an entry
type UpsertWhitelistRequest struct {
	Email              string  `json:"email" validate:"required,email,max=255"`
	IsWhitelisted      *bool   `json:"is_whitelisted"`
	OnboardingComplete *bool   `json:"onboarding_complete"`
	StartupName        *string `json:"startup_name" validate:"omitempty,max=200"`
	HasLaunchedToken   *bool   `json:"has_launched_token"`
	HasLiveToken       *bool   `json:"has_live_token"`
	TokenContract      *string `json:"token_contract" validate:"omitempty,max=100"`
}

// ToggleWhitelistRequest represents the admin request to flip the whitelist flag
type ToggleWhitelistRequest struct {
	Email         string `json:"email" validate:"required,email,max=255"`
	IsWhitelisted *bool  `json:"is_whitelisted" validate:"required"`
}

// CheckAccess decides where a signed-in principal belongs. A missing row or a
// row with is_whitelisted=false routes to the rejection screen; a whitelisted
// row routes to onboarding until onboarding_complete is set. Lookup errors
// never grant access: the decision fails closed to the rejection route.
func (s *WhitelistService) CheckAccess(email string) *AccessDecision {
	entry, err := s.repo.GetByEmail(normalizeEmail(email))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.WithField("email", email).WithError(err).Error("whitelist lookup failed, denying access")
		}
		return &AccessDecision{Route: RouteNotWhitelisted}
	}

	if !entry.IsWhitelisted {
		return &AccessDecision{Route: RouteNotWhitelisted}
	}

	if !entry.OnboardingComplete {
		return &AccessDecision{Whitelisted: true, Route: RouteOnboarding}
	}

	return &AccessDecision{Whitelisted: true, OnboardingComplete: true, Route: RouteDashboard}
}

// GetUserData returns the startup fields pre-filled for the onboarding
// confirmation screen
func (s *WhitelistService) GetUserData(email string) (*UserDataResponse, error) {
	entry, err := s.repo.GetByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWhitelistEntryNotFound
		}
		return nil, fmt.Errorf("failed to get whitelist entry: %w", err)
	}

	return &UserDataResponse{
		Email:            entry.Email,
		StartupName:      entry.StartupName,
		HasLaunchedToken: entry.HasLaunchedToken,
		HasLiveToken:     entry.HasLiveToken,
		TokenContract:    entry.TokenContract,
	}, nil
}

// ListEntries returns every allow-list entry, newest first
func (s *WhitelistService) ListEntries() (*WhitelistListResponse, error) {
	entries, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list whitelist entries: %w", err)
	}

	responses := make([]WhitelistEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = s.toResponse(&e)
	}

	return &WhitelistListResponse{Entries: responses, Total: len(responses)}, nil
}

// UpsertEntry adds an email to the allow-list or overrides the provided fields
// of an existing entry. Fields the request omits keep their stored values. New
// entries default to is_whitelisted=true and onboarding_complete=false.
func (s *WhitelistService) UpsertEntry(req *UpsertWhitelistRequest) (*WhitelistEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entry := &models.WhitelistEntry{
		Email:              normalizeEmail(req.Email),
		IsWhitelisted:      true,
		OnboardingComplete: false,
		StartupName:        req.StartupName,
		HasLaunchedToken:   req.HasLaunchedToken,
		HasLiveToken:       req.HasLiveToken,
		TokenContract:      req.TokenContract,
	}

	overrides := make([]string, 0, 6)
	if req.IsWhitelisted != nil {
		entry.IsWhitelisted = *req.IsWhitelisted
		overrides = append(overrides, "is_whitelisted")
	}
	if req.OnboardingComplete != nil {
		entry.OnboardingComplete = *req.OnboardingComplete
		overrides = append(overrides, "onboarding_complete")
	}
	if req.StartupName != nil {
		overrides = append(overrides, "startup_name")
	}
	if req.HasLaunchedToken != nil {
		overrides = append(overrides, "has_launched_token")
	}
	if req.HasLiveToken != nil {
		overrides = append(overrides, "has_live_token")
	}
	if req.TokenContract != nil {
		overrides = append(overrides, "token_contract")
	}

	if err := s.repo.Upsert(entry, overrides); err != nil {
		return nil, fmt.Errorf("failed to upsert whitelist entry: %w", err)
	}

	saved, err := s.repo.GetByEmail(entry.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to reload whitelist entry: %w", err)
	}

	resp := s.toResponse(saved)
	return &resp, nil
}

// SetWhitelisted flips the whitelist flag of an existing entry
func (s *WhitelistService) SetWhitelisted(req *ToggleWhitelistRequest) (*WhitelistEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entry, err := s.repo.SetWhitelisted(normalizeEmail(req.Email), *req.IsWhitelisted)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWhitelistEntryNotFound
		}
		return nil, fmt.Errorf("failed to update whitelist entry: %w", err)
	}

	resp := s.toResponse(entry)
	return &resp, nil
}

// toResponse converts a WhitelistEntry model to API response
func (s *WhitelistService) toResponse(entry *models.WhitelistEntry) WhitelistEntryResponse {
	return WhitelistEntryResponse{
		ID:                 entry.ID,
		Email:              entry.Email,
		IsWhitelisted:      entry.IsWhitelisted,
		OnboardingComplete: entry.OnboardingComplete,
		StartupName:        entry.StartupName,
		HasLaunchedToken:   entry.HasLaunchedToken,
		HasLiveToken:       entry.HasLiveToken,
		TokenContract:      entry.TokenContract,
		CreatedAt:          entry.CreatedAt,
		UpdatedAt:          entry.UpdatedAt,
	}
}

// normalizeEmail lowercases and trims an email so lookups and upserts agree on the key
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

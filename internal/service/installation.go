package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"client-portal-backend/internal/config"
	"client-portal-backend/internal/database/models"
	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/logger"
	"client-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InstallationService tracks the GitHub App installation linked to each user.
// The install itself happens on github.com; this service only records and
// reports its outcome.
type InstallationService struct {
	repo      repository.GitHubInstallationRepositoryInterface
	cfg       *config.Config
	validator *validator.Validate
	poller    *InstallPoller
	log       *logger.Logger
}

// Ensure InstallationService implements InstallationServiceInterface
var _ InstallationServiceInterface = (*InstallationService)(nil)

// NewInstallationService creates a new InstallationService
func NewInstallationService(
	repo repository.GitHubInstallationRepositoryInterface,
	cfg *config.Config,
	validator *validator.Validate,
) *InstallationService {
	s := &InstallationService{
		repo:      repo,
		cfg:       cfg,
		validator: validator,
		log:       logger.New(),
	}
	s.poller = NewInstallPoller(s, cfg)
	return s
}

// InstallationAccount mirrors the account object GitHub reports for an install
type InstallationAccount struct {
	Login string `json:"login"`
	Type  string `json:"type"`
}

// InstallationStatusResponse reports whether the user has a linked installation
type InstallationStatusResponse struct {
	Installed      bool                 `json:"installed"`
	InstallationID string               `json:"installation_id,omitempty"`
	Account        *InstallationAccount `json:"account,omitempty"`
	InstallURL     string               `json:"install_url,omitempty"`
}

// SaveInstallationRequest records an installation reported by the front end
type SaveInstallationRequest struct {
	InstallationID string               `json:"installation_id" validate:"required,max=50"`
	Account        *InstallationAccount `json:"account"`
}

// Status returns the current installation state for the user. A missing row
// is not an error: the response carries installed=false and the install URL
// so the front end can offer the connect button.
func (s *InstallationService) Status(userID uuid.UUID) (*InstallationStatusResponse, error) {
	installation, err := s.repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &InstallationStatusResponse{
				Installed:  false,
				InstallURL: s.cfg.GitHubInstallURL,
			}, nil
		}
		return nil, fmt.Errorf("failed to get installation: %w", err)
	}

	resp := &InstallationStatusResponse{
		Installed:      true,
		InstallationID: installation.InstallationID,
		InstallURL:     s.cfg.GitHubInstallURL,
	}
	if len(installation.Account) > 0 {
		var account InstallationAccount
		if err := json.Unmarshal(installation.Account, &account); err != nil {
			s.log.WithField("user_id", userID).WithError(err).Warn("failed to decode installation account")
		} else {
			resp.Account = &account
		}
	}
	return resp, nil
}

// Save upserts the installation reported for the user
func (s *InstallationService) Save(userID uuid.UUID, req *SaveInstallationRequest) (*InstallationStatusResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	installation := &models.GitHubInstallation{
		UserID:         userID,
		InstallationID: req.InstallationID,
	}
	if req.Account != nil {
		raw, err := json.Marshal(req.Account)
		if err != nil {
			return nil, fmt.Errorf("failed to encode account: %w", err)
		}
		installation.Account = raw
	}

	if err := s.repo.Upsert(installation); err != nil {
		return nil, fmt.Errorf("failed to save installation: %w", err)
	}

	return s.Status(userID)
}

// HandleCallback records the installation reported by GitHub's setup redirect
func (s *InstallationService) HandleCallback(userID uuid.UUID, installationID, setupAction string) error {
	if installationID == "" {
		return apperrors.NewValidationError("installation_id", "installation_id is required")
	}

	s.log.WithFields(map[string]interface{}{
		"user_id":         userID,
		"installation_id": installationID,
		"setup_action":    setupAction,
	}).Info("recording GitHub App installation callback")

	installation := &models.GitHubInstallation{
		UserID:         userID,
		InstallationID: installationID,
	}
	if err := s.repo.Upsert(installation); err != nil {
		return fmt.Errorf("failed to save installation: %w", err)
	}
	return nil
}

// AwaitInstallation blocks until the user's installation appears, the polling
// bounds are exhausted, or the request context is cancelled
func (s *InstallationService) AwaitInstallation(ctx context.Context, userID uuid.UUID) (*InstallationStatusResponse, error) {
	return s.poller.Wait(ctx, userID)
}

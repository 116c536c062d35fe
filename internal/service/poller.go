package service

import (
	"context"
	"time"

	"client-portal-backend/internal/config"
	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/logger"

	"github.com/google/uuid"
)

// installStatusChecker is the slice of InstallationService the poller needs
type installStatusChecker interface {
	Status(userID uuid.UUID) (*InstallationStatusResponse, error)
}

// InstallPoller repeatedly checks for a user's GitHub App installation until
// it appears or a bound is hit. Both an attempt count and a wall-clock
// duration bound the loop; whichever trips first ends it with
// ErrInstallTimeout. Transient status errors are logged and the loop keeps
// going, matching the front end's tolerance for flaky checks mid-install.
type InstallPoller struct {
	checker     installStatusChecker
	Interval    time.Duration
	MaxAttempts int
	MaxDuration time.Duration
	log         *logger.Logger
}

// NewInstallPoller creates a poller with bounds taken from configuration
func NewInstallPoller(checker installStatusChecker, cfg *config.Config) *InstallPoller {
	return &InstallPoller{
		checker:     checker,
		Interval:    cfg.InstallPollInterval(),
		MaxAttempts: cfg.InstallPollMaxAttempts,
		MaxDuration: cfg.InstallPollMaxDuration(),
		log:         logger.New(),
	}
}

// Wait blocks until the installation is recorded, a bound trips, or ctx is
// cancelled. The first check runs immediately so an already-installed app
// returns without sleeping.
func (p *InstallPoller) Wait(ctx context.Context, userID uuid.UUID) (*InstallationStatusResponse, error) {
	deadline := time.Now().Add(p.MaxDuration)
	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		status, err := p.checker.Status(userID)
		if err != nil {
			p.log.WithField("user_id", userID).WithError(err).Warn("installation status check failed, retrying")
		} else if status.Installed {
			return status, nil
		}

		// The final attempt never sleeps; the timeout is reported as soon
		// as a bound trips
		if attempt == p.MaxAttempts || time.Now().After(deadline) {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}

	return nil, apperrors.ErrInstallTimeout
}

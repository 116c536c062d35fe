package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"client-portal-backend/internal/config"
	apperrors "client-portal-backend/internal/errors"
)

// ActivityService proxies read-only queries to the external activity-tracking
// backend. The backend itself is owned elsewhere; this service only forwards
// and relays.
type ActivityService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// Ensure ActivityService implements ActivityServiceInterface
var _ ActivityServiceInterface = (*ActivityService)(nil)

// NewActivityService creates a new ActivityService
func NewActivityService(cfg *config.Config) *ActivityService {
	return &ActivityService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.ActivityTimeout()},
	}
}

// FetchActivity forwards an activity query upstream and returns the raw body
// plus its content type. period defaults to "week"; repository is optional.
func (s *ActivityService) FetchActivity(ctx context.Context, userEmail, period, repository string) ([]byte, string, error) {
	if s.cfg.ActivityBackendURL == "" {
		return nil, "", apperrors.ErrActivityNotConfigured
	}

	base := strings.TrimRight(s.cfg.ActivityBackendURL, "/")
	upstreamURL, err := url.Parse(base + "/activity")
	if err != nil {
		return nil, "", fmt.Errorf("invalid activity backend URL: %w", err)
	}

	if period == "" {
		period = "week"
	}
	q := url.Values{}
	q.Set("period", period)
	q.Set("user", userEmail)
	if repository != "" {
		q.Set("repository", repository)
	}
	upstreamURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, upstreamURL.String(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build upstream request: %w", err)
	}
	if s.cfg.ActivityBackendToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.ActivityBackendToken)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("activity backend request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read activity backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("activity backend returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	return body, contentType, nil
}

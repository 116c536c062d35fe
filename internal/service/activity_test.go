package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"client-portal-backend/internal/config"
	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActivityService(backendURL string) *service.ActivityService {
	return service.NewActivityService(&config.Config{
		ActivityBackendURL:   backendURL,
		ActivityBackendToken: "backend-token",
		ActivityTimeoutSec:   5,
	})
}

func TestFetchActivity(t *testing.T) {
	var gotQuery map[string]string
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/activity", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{
			"period":     r.URL.Query().Get("period"),
			"user":       r.URL.Query().Get("user"),
			"repository": r.URL.Query().Get("repository"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"commits":42}`))
	}))
	defer server.Close()

	svc := newActivityService(server.URL)
	body, contentType, err := svc.FetchActivity(context.Background(), "founder@acme.dev", "month", "acme/api")

	require.NoError(t, err)
	assert.JSONEq(t, `{"commits":42}`, string(body))
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "Bearer backend-token", gotAuth)
	assert.Equal(t, "month", gotQuery["period"])
	assert.Equal(t, "founder@acme.dev", gotQuery["user"])
	assert.Equal(t, "acme/api", gotQuery["repository"])
}

func TestFetchActivityDefaultsPeriod(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "week", r.URL.Query().Get("period"))
		assert.Empty(t, r.URL.Query().Get("repository"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	svc := newActivityService(server.URL)
	_, _, err := svc.FetchActivity(context.Background(), "founder@acme.dev", "", "")

	require.NoError(t, err)
}

func TestFetchActivityNotConfigured(t *testing.T) {
	svc := newActivityService("")

	body, _, err := svc.FetchActivity(context.Background(), "founder@acme.dev", "week", "")

	assert.Nil(t, body)
	assert.ErrorIs(t, err, apperrors.ErrActivityNotConfigured)
}

func TestFetchActivityUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := newActivityService(server.URL)
	body, _, err := svc.FetchActivity(context.Background(), "founder@acme.dev", "week", "")

	assert.Nil(t, body)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

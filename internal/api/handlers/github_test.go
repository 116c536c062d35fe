package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"client-portal-backend/internal/api/handlers"
	"client-portal-backend/internal/config"
	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/mocks"
	"client-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GitHubHandlerTestSuite defines the test suite for GitHubHandler
type GitHubHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockInstallationSv *mocks.MockInstallationServiceInterface
	mockActivitySv     *mocks.MockActivityServiceInterface
	handler            *handlers.GitHubHandler
	router             *gin.Engine
	userID             uuid.UUID
}

func (suite *GitHubHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockInstallationSv = mocks.NewMockInstallationServiceInterface(suite.ctrl)
	suite.mockActivitySv = mocks.NewMockActivityServiceInterface(suite.ctrl)
	suite.handler = handlers.NewGitHubHandler(suite.mockInstallationSv, suite.mockActivitySv, &config.Config{
		FrontendURL: "http://localhost:3000",
	})
	suite.userID = uuid.New()

	suite.router = gin.New()
	suite.router.Use(sessionFor(suite.userID, "founder@acme.dev"))
	suite.router.GET("/github/installation", suite.handler.GetInstallation)
	suite.router.POST("/github/installation", suite.handler.SaveInstallation)
	suite.router.GET("/github/installation/wait", suite.handler.WaitForInstallation)
	suite.router.GET("/github/callback", suite.handler.InstallationCallback)
	suite.router.GET("/github/activity", suite.handler.Activity)
}

func (suite *GitHubHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GitHubHandlerTestSuite) TestGetInstallation_NotInstalled() {
	suite.mockInstallationSv.EXPECT().Status(suite.userID).Return(&service.InstallationStatusResponse{
		Installed:  false,
		InstallURL: "https://github.com/apps/client-portal/installations/new",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/github/installation", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.InstallationStatusResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(suite.T(), got.Installed)
	assert.NotEmpty(suite.T(), got.InstallURL)
}

func (suite *GitHubHandlerTestSuite) TestSaveInstallation_Success() {
	suite.mockInstallationSv.EXPECT().Save(suite.userID, gomock.Any()).DoAndReturn(
		func(userID uuid.UUID, req *service.SaveInstallationRequest) (*service.InstallationStatusResponse, error) {
			assert.Equal(suite.T(), "12345678", req.InstallationID)
			return &service.InstallationStatusResponse{Installed: true, InstallationID: "12345678"}, nil
		})

	body := `{"installation_id": "12345678", "account": {"login": "acme-labs", "type": "Organization"}}`
	req := httptest.NewRequest(http.MethodPost, "/github/installation", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.InstallationStatusResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(suite.T(), got.Installed)
}

func (suite *GitHubHandlerTestSuite) TestSaveInstallation_MissingID() {
	body := `{"account": {"login": "acme-labs"}}`
	req := httptest.NewRequest(http.MethodPost, "/github/installation", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *GitHubHandlerTestSuite) TestWaitForInstallation_Detected() {
	suite.mockInstallationSv.EXPECT().AwaitInstallation(gomock.Any(), suite.userID).Return(&service.InstallationStatusResponse{
		Installed:      true,
		InstallationID: "12345678",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/github/installation/wait", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *GitHubHandlerTestSuite) TestWaitForInstallation_Timeout() {
	suite.mockInstallationSv.EXPECT().AwaitInstallation(gomock.Any(), suite.userID).Return(nil, apperrors.ErrInstallTimeout)

	req := httptest.NewRequest(http.MethodGet, "/github/installation/wait", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusGatewayTimeout, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"timed_out":true`)
	assert.Contains(suite.T(), w.Body.String(), `"installed":false`)
}

func (suite *GitHubHandlerTestSuite) TestInstallationCallback_Success() {
	suite.mockInstallationSv.EXPECT().HandleCallback(suite.userID, "12345678", "install").Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/github/callback?installation_id=12345678&setup_action=install", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "http://localhost:3000/dev-update?installed=true", w.Header().Get("Location"))
}

func (suite *GitHubHandlerTestSuite) TestInstallationCallback_MissingID() {
	suite.mockInstallationSv.EXPECT().HandleCallback(suite.userID, "", "").Return(
		apperrors.NewValidationError("installation_id", "installation_id is required"))

	req := httptest.NewRequest(http.MethodGet, "/github/callback", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "http://localhost:3000/dev-update?error=missing_installation_id", w.Header().Get("Location"))
}

func (suite *GitHubHandlerTestSuite) TestActivity_Success() {
	suite.mockActivitySv.EXPECT().FetchActivity(gomock.Any(), "founder@acme.dev", "month", "acme/api").Return(
		[]byte(`{"commits":42}`), "application/json", nil)

	req := httptest.NewRequest(http.MethodGet, "/github/activity?period=month&repository=acme/api", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"commits":42}`, w.Body.String())
	assert.Contains(suite.T(), w.Header().Get("Content-Type"), "application/json")
}

func (suite *GitHubHandlerTestSuite) TestActivity_NotConfigured() {
	suite.mockActivitySv.EXPECT().FetchActivity(gomock.Any(), "founder@acme.dev", "week", "").Return(
		nil, "", apperrors.ErrActivityNotConfigured)

	req := httptest.NewRequest(http.MethodGet, "/github/activity", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotImplemented, w.Code)
}

func (suite *GitHubHandlerTestSuite) TestActivity_UpstreamDown() {
	suite.mockActivitySv.EXPECT().FetchActivity(gomock.Any(), "founder@acme.dev", "week", "").Return(
		nil, "", assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/github/activity", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)
}

func TestGitHubHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GitHubHandlerTestSuite))
}

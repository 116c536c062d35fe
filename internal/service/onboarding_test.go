package service_test

import (
	"errors"
	"testing"

	"client-portal-backend/internal/database/models"
	"client-portal-backend/internal/mocks"
	"client-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OnboardingServiceTestSuite tests the OnboardingService
type OnboardingServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockProfileRepo    *mocks.MockUserProfileRepositoryInterface
	mockWhitelistRepo  *mocks.MockWhitelistRepositoryInterface
	mockInvitationRepo *mocks.MockTeamInvitationRepositoryInterface
	svc                *service.OnboardingService
	userID             uuid.UUID
}

// SetupTest runs before each test
func (suite *OnboardingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProfileRepo = mocks.NewMockUserProfileRepositoryInterface(suite.ctrl)
	suite.mockWhitelistRepo = mocks.NewMockWhitelistRepositoryInterface(suite.ctrl)
	suite.mockInvitationRepo = mocks.NewMockTeamInvitationRepositoryInterface(suite.ctrl)
	suite.svc = service.NewOnboardingService(
		suite.mockProfileRepo,
		suite.mockWhitelistRepo,
		suite.mockInvitationRepo,
		validator.New(),
	)
	suite.userID = uuid.New()
}

// TearDownTest runs after each test
func (suite *OnboardingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OnboardingServiceTestSuite) TestComplete() {
	suite.mockProfileRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(profile *models.UserProfile) error {
		suite.Equal(suite.userID, profile.UserID)
		suite.Equal("founder@acme.dev", profile.Email)
		suite.Equal("Acme Labs", profile.StartupName)
		suite.True(profile.OnboardingComplete)
		return nil
	})
	suite.mockWhitelistRepo.EXPECT().SetOnboardingComplete("founder@acme.dev").Return(nil)
	suite.mockInvitationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(inv *models.TeamInvitation) error {
		suite.Equal("teammate@acme.dev", inv.Email)
		suite.Equal(models.InvitationRoleViewer, inv.Role)
		suite.Equal(suite.userID, inv.InvitedBy)
		suite.Equal("acme.dev", inv.Domain)
		suite.Equal(models.InvitationStatusPending, inv.Status)
		return nil
	})

	resp, err := suite.svc.Complete(suite.userID, "founder@acme.dev", &service.CompleteOnboardingRequest{
		StartupName:      "Acme Labs",
		HasLaunchedToken: false,
		TeamMembers: []service.TeamMemberInput{
			{Email: "teammate@acme.dev", Role: "viewer"},
		},
	})

	suite.NoError(err)
	suite.True(resp.Success)
	suite.Equal(1, resp.Invited)
	suite.Equal(0, resp.Skipped)
}

// Teammates outside the principal's domain and the principal themselves are
// skipped, not invited
func (suite *OnboardingServiceTestSuite) TestCompleteSkipsForeignDomainAndSelf() {
	suite.mockProfileRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
	suite.mockWhitelistRepo.EXPECT().SetOnboardingComplete("founder@acme.dev").Return(nil)
	suite.mockInvitationRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.svc.Complete(suite.userID, "founder@acme.dev", &service.CompleteOnboardingRequest{
		StartupName: "Acme Labs",
		TeamMembers: []service.TeamMemberInput{
			{Email: "outsider@other.io", Role: "viewer"},
			{Email: "founder@acme.dev", Role: "admin"},
			{Email: "teammate@acme.dev", Role: "admin"},
		},
	})

	suite.NoError(err)
	suite.Equal(1, resp.Invited)
	suite.Equal(2, resp.Skipped)
}

// A failed profile upsert or whitelist update must not strand the principal
// on the onboarding screen
func (suite *OnboardingServiceTestSuite) TestCompleteBestEffort() {
	suite.mockProfileRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("profile write failed"))
	suite.mockWhitelistRepo.EXPECT().SetOnboardingComplete("founder@acme.dev").Return(errors.New("whitelist write failed"))
	suite.mockInvitationRepo.EXPECT().Create(gomock.Any()).Return(errors.New("invitation write failed"))

	resp, err := suite.svc.Complete(suite.userID, "founder@acme.dev", &service.CompleteOnboardingRequest{
		StartupName: "Acme Labs",
		TeamMembers: []service.TeamMemberInput{
			{Email: "teammate@acme.dev", Role: "viewer"},
		},
	})

	suite.NoError(err)
	suite.True(resp.Success)
	suite.Equal(0, resp.Invited)
	suite.Equal(1, resp.Skipped)
}

func (suite *OnboardingServiceTestSuite) TestCompleteInvalidRole() {
	resp, err := suite.svc.Complete(suite.userID, "founder@acme.dev", &service.CompleteOnboardingRequest{
		StartupName: "Acme Labs",
		TeamMembers: []service.TeamMemberInput{
			{Email: "teammate@acme.dev", Role: "owner"},
		},
	})

	suite.Nil(resp)
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *OnboardingServiceTestSuite) TestCompleteNoTeamMembers() {
	suite.mockProfileRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
	suite.mockWhitelistRepo.EXPECT().SetOnboardingComplete("founder@acme.dev").Return(nil)

	resp, err := suite.svc.Complete(suite.userID, "founder@acme.dev", &service.CompleteOnboardingRequest{
		StartupName:      "Acme Labs",
		HasLaunchedToken: true,
	})

	suite.NoError(err)
	suite.True(resp.Success)
	suite.Equal(0, resp.Invited)
	suite.Equal(0, resp.Skipped)
}

func TestOnboardingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OnboardingServiceTestSuite))
}

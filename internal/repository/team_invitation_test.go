//go:build integration
// +build integration

package repository

import (
	"testing"

	"client-portal-backend/internal/database/models"
	"client-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamInvitationRepositoryTestSuite tests the TeamInvitationRepository
type TeamInvitationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamInvitationRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamInvitationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamInvitationRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamInvitationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamInvitationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamInvitationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamInvitationRepositoryTestSuite) createInviter() *models.User {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))
	return user
}

func (suite *TeamInvitationRepositoryTestSuite) TestCreate() {
	inviter := suite.createInviter()
	invitation := suite.factories.Invitation.WithInviter(inviter.ID, "acme.dev")

	err := suite.repo.Create(invitation)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, invitation.ID)
	suite.Equal(models.InvitationStatusPending, invitation.Status)
}

func (suite *TeamInvitationRepositoryTestSuite) TestGetByInviter() {
	inviter := suite.createInviter()
	other := suite.createInviter()

	suite.NoError(suite.repo.Create(suite.factories.Invitation.WithInviter(inviter.ID, "acme.dev")))
	suite.NoError(suite.repo.Create(suite.factories.Invitation.WithInviter(inviter.ID, "acme.dev")))
	suite.NoError(suite.repo.Create(suite.factories.Invitation.WithInviter(other.ID, "other.io")))

	invitations, err := suite.repo.GetByInviter(inviter.ID)

	suite.NoError(err)
	suite.Len(invitations, 2)
	for _, inv := range invitations {
		suite.Equal(inviter.ID, inv.InvitedBy)
	}
}

func (suite *TeamInvitationRepositoryTestSuite) TestGetByID() {
	inviter := suite.createInviter()
	invitation := suite.factories.Invitation.WithInviter(inviter.ID, "acme.dev")
	suite.NoError(suite.repo.Create(invitation))

	retrieved, err := suite.repo.GetByID(invitation.ID)

	suite.NoError(err)
	suite.Equal(invitation.Email, retrieved.Email)
	suite.Equal(inviter.ID, retrieved.InvitedBy)
}

func (suite *TeamInvitationRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamInvitationRepositoryTestSuite) TestDelete() {
	inviter := suite.createInviter()
	invitation := suite.factories.Invitation.WithInviter(inviter.ID, "acme.dev")
	suite.NoError(suite.repo.Create(invitation))

	suite.NoError(suite.repo.Delete(invitation.ID))

	_, err := suite.repo.GetByID(invitation.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestTeamInvitationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamInvitationRepositoryTestSuite))
}

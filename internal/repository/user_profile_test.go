//go:build integration
// +build integration

package repository

import (
	"testing"

	"client-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserProfileRepositoryTestSuite tests the UserProfileRepository
type UserProfileRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserProfileRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserProfileRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserProfileRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserProfileRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserProfileRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserProfileRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// Upserts for the same user update in place, keyed by user_id
func (suite *UserProfileRepositoryTestSuite) TestUpsertKeyedByUser() {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))

	first := suite.factories.Profile.WithUser(user.ID, user.Email)
	first.StartupName = "Acme Labs"
	suite.NoError(suite.repo.Upsert(first))

	second := suite.factories.Profile.WithUser(user.ID, user.Email)
	second.StartupName = "Acme Labs Renamed"
	second.OnboardingComplete = true
	suite.NoError(suite.repo.Upsert(second))

	saved, err := suite.repo.GetByUserID(user.ID)
	suite.NoError(err)
	suite.Equal("Acme Labs Renamed", saved.StartupName)
	suite.True(saved.OnboardingComplete)

	var count int64
	suite.baseTestSuite.DB.Table("user_profiles").Where("user_id = ?", user.ID).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *UserProfileRepositoryTestSuite) TestGetByUserIDNotFound() {
	_, err := suite.repo.GetByUserID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestUserProfileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserProfileRepositoryTestSuite))
}

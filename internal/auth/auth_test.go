package auth

import (
	"net/url"
	"testing"
	"time"

	"client-portal-backend/internal/database/models"
	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func testAuthConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:   "test-signing-key",
		RedirectURL: "http://localhost:7010",
		Providers: map[string]ProviderConfig{
			"github": {
				ClientID:     "test-client-id",
				ClientSecret: "test-client-secret",
			},
		},
	}
}

func newTestService(t *testing.T, userRepo *mocks.MockUserRepositoryInterface) *AuthService {
	svc, err := NewAuthService(testAuthConfig(), userRepo)
	require.NoError(t, err)
	return svc
}

func TestAuthConfigValidation(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testAuthConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testAuthConfig()
		config.JWTSecret = ""
		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("missing redirect url", func(t *testing.T) {
		config := testAuthConfig()
		config.RedirectURL = ""
		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "redirect URL is required")
	})

	t.Run("no providers", func(t *testing.T) {
		config := testAuthConfig()
		config.Providers = nil
		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least one provider")
	})

	t.Run("missing client credentials", func(t *testing.T) {
		config := testAuthConfig()
		config.Providers["github"] = ProviderConfig{}
		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "client_id is required")
	})
}

func TestGetProvider(t *testing.T) {
	config := testAuthConfig()

	provider, err := config.GetProvider("github")
	require.NoError(t, err)
	assert.Equal(t, "test-client-id", provider.ClientID)

	_, err = config.GetProvider("gitlab")
	assert.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword("correct horse battery staple", hash))
	assert.False(t, CheckPassword("wrong password", hash))
}

func TestJWTOperations(t *testing.T) {
	svc := newTestService(t, nil)
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "founder@acme.dev",
	}

	t.Run("generate and validate", func(t *testing.T) {
		token, err := svc.GenerateJWT(user, "local")
		require.NoError(t, err)

		claims, err := svc.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, "founder@acme.dev", claims.Email)
		assert.Equal(t, "local", claims.Provider)
		assert.Equal(t, "client-portal-backend", claims.Issuer)
	})

	t.Run("rejects wrong signing key", func(t *testing.T) {
		otherConfig := testAuthConfig()
		otherConfig.JWTSecret = "another-signing-key"
		other, err := NewAuthService(otherConfig, nil)
		require.NoError(t, err)

		token, err := other.GenerateJWT(user, "local")
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		now := time.Now()
		claims := &AuthClaims{
			UserID: user.ID.String(),
			Email:  user.Email,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
				Issuer:    "client-portal-backend",
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = svc.ValidateJWT(signed)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateJWT("not-a-token")
		assert.Error(t, err)
	})
}

func TestSignUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := newTestService(t, userRepo)

	t.Run("creates account and issues tokens", func(t *testing.T) {
		userRepo.EXPECT().GetByEmail("founder@acme.dev").Return(nil, gorm.ErrRecordNotFound)
		userRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
			assert.Equal(t, "founder@acme.dev", user.Email)
			assert.Equal(t, models.AuthProviderLocal, user.Provider)
			assert.NotEmpty(t, user.PasswordHash)
			user.ID = uuid.New()
			return nil
		})

		resp, err := svc.SignUp(&SignUpRequest{
			Email:    "founder@acme.dev",
			Password: "correct horse battery staple",
			Name:     "Founder",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "Bearer", resp.TokenType)
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo.EXPECT().GetByEmail("founder@acme.dev").Return(&models.User{Email: "founder@acme.dev"}, nil)

		resp, err := svc.SignUp(&SignUpRequest{
			Email:    "founder@acme.dev",
			Password: "correct horse battery staple",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrUserExists)
	})
}

func TestSignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := newTestService(t, userRepo)

	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	user := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "founder@acme.dev",
		PasswordHash: hash,
		Provider:     models.AuthProviderLocal,
	}

	t.Run("valid credentials", func(t *testing.T) {
		userRepo.EXPECT().GetByEmail("founder@acme.dev").Return(user, nil)

		resp, err := svc.SignIn(&SignInRequest{Email: "founder@acme.dev", Password: "correct horse battery staple"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo.EXPECT().GetByEmail("founder@acme.dev").Return(user, nil)

		resp, err := svc.SignIn(&SignInRequest{Email: "founder@acme.dev", Password: "wrong"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown account looks like wrong password", func(t *testing.T) {
		userRepo.EXPECT().GetByEmail("nobody@acme.dev").Return(nil, gorm.ErrRecordNotFound)

		resp, err := svc.SignIn(&SignInRequest{Email: "nobody@acme.dev", Password: "anything"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("oauth-only account has no password", func(t *testing.T) {
		userRepo.EXPECT().GetByEmail("oauth@acme.dev").Return(&models.User{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Email:     "oauth@acme.dev",
			Provider:  models.AuthProvider("github"),
		}, nil)

		resp, err := svc.SignIn(&SignInRequest{Email: "oauth@acme.dev", Password: "anything"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestRefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := newTestService(t, userRepo)

	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "founder@acme.dev",
		Provider:  models.AuthProviderLocal,
	}

	issued, err := svc.issueTokens(user, "local")
	require.NoError(t, err)

	t.Run("rotates the refresh token", func(t *testing.T) {
		userRepo.EXPECT().GetByID(user.ID).Return(user, nil)

		refreshed, err := svc.RefreshToken(issued.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.NotEqual(t, issued.RefreshToken, refreshed.RefreshToken)

		// The rotated-out token is no longer usable
		_, err = svc.RefreshToken(issued.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.RefreshToken("never-issued")
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("expired token", func(t *testing.T) {
		svc.tokenMutex.Lock()
		svc.refreshTokens["stale"] = &RefreshTokenData{
			UserID:    user.ID,
			Email:     user.Email,
			Provider:  "local",
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		svc.tokenMutex.Unlock()

		_, err := svc.RefreshToken("stale")
		assert.ErrorIs(t, err, apperrors.ErrRefreshTokenExpired)
	})
}

func TestPasswordReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := newTestService(t, userRepo)

	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "founder@acme.dev",
	}

	t.Run("unknown email yields no token and no error", func(t *testing.T) {
		userRepo.EXPECT().GetByEmail("nobody@acme.dev").Return(nil, gorm.ErrRecordNotFound)

		token, err := svc.RequestPasswordReset("nobody@acme.dev")
		assert.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("token is single use", func(t *testing.T) {
		userRepo.EXPECT().GetByEmail("founder@acme.dev").Return(user, nil)
		userRepo.EXPECT().UpdatePassword(user.ID, gomock.Any()).Return(nil)

		token, err := svc.RequestPasswordReset("founder@acme.dev")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		require.NoError(t, svc.ConfirmPasswordReset(token, "a brand new password"))

		err = svc.ConfirmPasswordReset(token, "another password")
		assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
	})

	t.Run("expired token", func(t *testing.T) {
		svc.tokenMutex.Lock()
		svc.resetTokens["stale"] = &resetTokenData{
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		svc.tokenMutex.Unlock()

		err := svc.ConfirmPasswordReset("stale", "a brand new password")
		assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
	})
}

func TestGetAuthURL(t *testing.T) {
	svc := newTestService(t, nil)

	state, err := svc.GenerateState()
	require.NoError(t, err)
	require.NotEmpty(t, state)

	authURL, err := svc.GetAuthURL("github", state)
	require.NoError(t, err)
	assert.Contains(t, authURL, "client_id=test-client-id")
	assert.Contains(t, authURL, "state="+url.QueryEscape(state))
	assert.Contains(t, authURL, "redirect_uri=")

	_, err = svc.GetAuthURL("gitlab", state)
	assert.Error(t, err)
}

func TestLogout(t *testing.T) {
	svc := newTestService(t, nil)
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "founder@acme.dev",
	}

	issued, err := svc.issueTokens(user, "local")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(issued.RefreshToken))

	_, err = svc.RefreshToken(issued.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"client-portal-backend/internal/database/models"
	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
	resetTokenTTL   = time.Hour
)

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Provider  string    `json:"provider"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type resetTokenData struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// AuthService provides authentication functionality
type AuthService struct {
	config        *AuthConfig
	githubClients map[string]*GitHubClient
	refreshTokens map[string]*RefreshTokenData // In-memory store for refresh tokens
	resetTokens   map[string]*resetTokenData   // In-memory store for password reset tokens
	tokenMutex    sync.RWMutex
	userRepo      repository.UserRepositoryInterface
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               string `json:"user_id" example:"7e7c26a4-4e4f-47a6-9f2f-0a9c6e2f8d11"`
	Email                string `json:"email" example:"founder@startup.com"`
	Provider             string `json:"provider" example:"local"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// SignUpRequest represents the request body for account creation
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

// SignInRequest represents the request body for password sign-in
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful authentication result
type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	TokenType    string       `json:"tokenType"`
	ExpiresIn    int64        `json:"expiresIn"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	User         *models.User `json:"user"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo repository.UserRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	githubClients := make(map[string]*GitHubClient)
	for providerName, providerConfig := range config.Providers {
		pc := providerConfig
		githubClients[providerName] = NewGitHubClient(&pc)
	}

	return &AuthService{
		config:        config,
		githubClients: githubClients,
		refreshTokens: make(map[string]*RefreshTokenData),
		resetTokens:   make(map[string]*resetTokenData),
		userRepo:      userRepo,
	}, nil
}

// SignUp creates a local account with a bcrypt-hashed password
func (s *AuthService) SignUp(req *SignUpRequest) (*AuthResponse, error) {
	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Provider:     models.AuthProviderLocal,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueTokens(user, string(models.AuthProviderLocal))
}

// SignIn verifies email/password credentials. Missing accounts and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) SignIn(req *SignInRequest) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// OAuth-only accounts have no password to check
	if user.PasswordHash == "" || !CheckPassword(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user, string(models.AuthProviderLocal))
}

// GetAuthURL generates an OAuth2 authorization URL for a configured provider
func (s *AuthService) GetAuthURL(provider, state string) (string, error) {
	if _, err := s.config.GetProvider(provider); err != nil {
		return "", err
	}

	githubClient, exists := s.githubClients[provider]
	if !exists {
		return "", fmt.Errorf("OAuth client not found for provider %s", provider)
	}

	callbackURL := fmt.Sprintf("%s/api/auth/%s/handler/frame", s.config.RedirectURL, provider)

	oauth2Config := githubClient.GetOAuth2Config(callbackURL)
	return oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// HandleCallback processes an OAuth2 callback: exchanges the code, fetches the
// provider profile and upserts the matching local account keyed by its
// verified email.
func (s *AuthService) HandleCallback(ctx context.Context, provider, code, state string) (*AuthResponse, error) {
	if _, err := s.config.GetProvider(provider); err != nil {
		return nil, err
	}

	githubClient, exists := s.githubClients[provider]
	if !exists {
		return nil, fmt.Errorf("OAuth client not found for provider %s", provider)
	}

	callbackURL := fmt.Sprintf("%s/api/auth/%s/handler/frame", s.config.RedirectURL, provider)
	oauth2Config := githubClient.GetOAuth2Config(callbackURL)

	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	profile, err := githubClient.GetUserProfile(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("provider %s returned no verified email", provider)
	}

	user, err := s.userRepo.GetByEmail(profile.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		user = &models.User{
			Email:         profile.Email,
			Name:          profile.Name,
			Provider:      models.AuthProvider(provider),
			EmailVerified: true,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	} else if !user.EmailVerified {
		user.EmailVerified = true
		if err := s.userRepo.Update(user); err != nil {
			logrus.WithError(err).Warn("failed to mark email verified after OAuth sign-in")
		}
	}

	return s.issueTokens(user, provider)
}

// RefreshToken generates a new JWT from a refresh token, rotating the latter
func (s *AuthService) RefreshToken(refreshToken string) (*AuthResponse, error) {
	s.tokenMutex.RLock()
	tokenData, exists := s.refreshTokens[refreshToken]
	s.tokenMutex.RUnlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if time.Now().After(tokenData.ExpiresAt) {
		s.tokenMutex.Lock()
		delete(s.refreshTokens, refreshToken)
		s.tokenMutex.Unlock()
		return nil, apperrors.ErrRefreshTokenExpired
	}

	user, err := s.userRepo.GetByID(tokenData.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()

	return s.issueTokens(user, tokenData.Provider)
}

// RequestPasswordReset issues a single-use reset token for the account.
// Returns an empty token without error when the email is unknown so callers
// cannot probe for registered addresses.
func (s *AuthService) RequestPasswordReset(email string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := s.generateRandomString(32)
	if err != nil {
		return "", err
	}

	s.tokenMutex.Lock()
	s.resetTokens[token] = &resetTokenData{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	s.tokenMutex.Unlock()

	return token, nil
}

// ConfirmPasswordReset applies a new password for a valid reset token
func (s *AuthService) ConfirmPasswordReset(token, newPassword string) error {
	s.tokenMutex.Lock()
	data, exists := s.resetTokens[token]
	if exists {
		delete(s.resetTokens, token)
	}
	s.tokenMutex.Unlock()

	if !exists || time.Now().After(data.ExpiresAt) {
		return apperrors.ErrInvalidResetToken
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(data.UserID, hash)
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User, provider string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   user.ID.String(),
		Email:    user.Email,
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "client-portal-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return s.generateRandomString(32)
}

// Logout invalidates the given refresh token; access tokens expire on their own
func (s *AuthService) Logout(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
	return nil
}

func (s *AuthService) issueTokens(user *models.User, provider string) (*AuthResponse, error) {
	jwtToken, err := s.GenerateJWT(user, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := s.generateRandomString(64)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &RefreshTokenData{
		UserID:    user.ID,
		Email:     user.Email,
		Provider:  provider,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
		CreatedAt: time.Now(),
	}
	s.tokenMutex.Unlock()

	return &AuthResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (s *AuthService) generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

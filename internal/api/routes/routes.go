package routes

import (
	"log"
	"time"

	"client-portal-backend/internal/api/handlers"
	"client-portal-backend/internal/api/middleware"
	"client-portal-backend/internal/auth"
	"client-portal-backend/internal/config"
	"client-portal-backend/internal/repository"
	"client-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	whitelistRepo := repository.NewWhitelistRepository(db)
	profileRepo := repository.NewUserProfileRepository(db)
	invitationRepo := repository.NewTeamInvitationRepository(db)
	installationRepo := repository.NewGitHubInstallationRepository(db)

	// Initialize services
	whitelistService := service.NewWhitelistService(whitelistRepo, validator)
	onboardingService := service.NewOnboardingService(profileRepo, whitelistRepo, invitationRepo, validator)
	teamService := service.NewTeamService(invitationRepo, whitelistRepo)
	installationService := service.NewInstallationService(installationRepo, cfg, validator)
	activityService := service.NewActivityService(cfg)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		// Continue without auth if config fails to load
		authConfig = nil
	}

	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		if authConfig.JWTSecret == "" {
			authConfig.JWTSecret = cfg.JWTSecret
		}
		authService, err := auth.NewAuthService(authConfig, userRepo)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authHandler = auth.NewAuthHandler(authService)
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	whitelistHandler := handlers.NewWhitelistHandler(whitelistService)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)
	teamHandler := handlers.NewTeamHandler(teamService)
	githubHandler := handlers.NewGitHubHandler(installationService, activityService, cfg)
	adminHandler := handlers.NewAdminHandler(whitelistService)

	// Rate limit stores, swept every 5 minutes
	rateStore := middleware.NewMemoryStore(5 * time.Minute)
	loginLimit := middleware.RateLimit(rateStore, cfg.LoginRateLimit,
		time.Duration(cfg.LoginRateWindowMin)*time.Minute, "login")
	resetLimit := middleware.RateLimit(rateStore, cfg.ResetRateLimit,
		time.Duration(cfg.ResetRateWindowMin)*time.Minute, "reset")
	apiLimit := middleware.RateLimit(rateStore, cfg.APIRateLimit,
		time.Duration(cfg.APIRateWindowSec)*time.Second, "api")

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/api/auth")
		{
			authGroup.POST("/signup", loginLimit, authHandler.SignUp)
			authGroup.POST("/signin", loginLimit, authHandler.SignIn)
			authGroup.POST("/reset-password", resetLimit, authHandler.ResetPassword)
			authGroup.POST("/reset-password/confirm", resetLimit, authHandler.ConfirmReset)
			authGroup.GET("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.POST("/validate", authHandler.ValidateToken)

			// Provider-specific OAuth routes
			providerGroup := authGroup.Group("/:provider")
			{
				providerGroup.GET("/start", authHandler.Start)
				providerGroup.GET("/handler/frame", authHandler.HandlerFrame)
			}
		}
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(apiLimit)
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Access gate routes
		whitelist := v1.Group("/whitelist")
		{
			whitelist.GET("/check", whitelistHandler.Check)
			whitelist.GET("/user-data", whitelistHandler.UserData)
		}

		// Onboarding routes
		v1.POST("/onboarding/complete", onboardingHandler.Complete)

		// Team invitation routes
		user := v1.Group("/user")
		{
			user.GET("/team-members", teamHandler.ListTeamMembers)
			user.DELETE("/team-members", teamHandler.DeleteTeamMember)
		}

		// GitHub App connector routes
		github := v1.Group("/github")
		{
			github.GET("/installation", githubHandler.GetInstallation)
			github.POST("/installation", githubHandler.SaveInstallation)
			github.GET("/installation/wait", githubHandler.WaitForInstallation)
			github.GET("/callback", githubHandler.InstallationCallback)
			github.GET("/activity", githubHandler.Activity)
		}

		// Admin console routes, gated by the shared admin password
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuth(cfg))
		{
			admin.GET("/whitelist", adminHandler.ListWhitelist)
			admin.POST("/whitelist", adminHandler.UpsertWhitelist)
			admin.PATCH("/whitelist", adminHandler.ToggleWhitelist)
		}
	}

	return router
}

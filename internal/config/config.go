package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Front end base URL, used for post-callback redirects
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	// Admin console gate. Shared password checked per request; a speed bump,
	// not an identity boundary.
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	// GitHub App configuration
	GitHubAppID      string `mapstructure:"GITHUB_APP_ID"`
	GitHubInstallURL string `mapstructure:"GITHUB_APP_INSTALL_URL"`

	// Activity-tracking backend (consumed read-only)
	ActivityBackendURL   string `mapstructure:"ACTIVITY_BACKEND_URL"`
	ActivityBackendToken string `mapstructure:"ACTIVITY_BACKEND_TOKEN"`
	ActivityTimeoutSec   int    `mapstructure:"ACTIVITY_TIMEOUT_SEC"`

	// Installation polling bounds
	InstallPollIntervalSec int `mapstructure:"INSTALL_POLL_INTERVAL_SEC"`
	InstallPollMaxAttempts int `mapstructure:"INSTALL_POLL_MAX_ATTEMPTS"`
	InstallPollMaxMinutes  int `mapstructure:"INSTALL_POLL_MAX_MINUTES"`

	// Rate limits for sensitive endpoints
	LoginRateLimit        int `mapstructure:"LOGIN_RATE_LIMIT"`
	LoginRateWindowMin    int `mapstructure:"LOGIN_RATE_WINDOW_MIN"`
	ResetRateLimit        int `mapstructure:"RESET_RATE_LIMIT"`
	ResetRateWindowMin    int `mapstructure:"RESET_RATE_WINDOW_MIN"`
	APIRateLimit          int `mapstructure:"API_RATE_LIMIT"`
	APIRateWindowSec      int `mapstructure:"API_RATE_WINDOW_SEC"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "client_portal")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")

	// Admin console defaults
	viper.SetDefault("ADMIN_PASSWORD", "")

	// GitHub App defaults
	viper.SetDefault("GITHUB_APP_ID", "")
	viper.SetDefault("GITHUB_APP_INSTALL_URL", "")

	// Activity backend defaults
	viper.SetDefault("ACTIVITY_BACKEND_URL", "")
	viper.SetDefault("ACTIVITY_BACKEND_TOKEN", "")
	viper.SetDefault("ACTIVITY_TIMEOUT_SEC", 10)

	// Installation polling defaults: 2s interval, 150 attempts, 5 minute wall clock
	viper.SetDefault("INSTALL_POLL_INTERVAL_SEC", 2)
	viper.SetDefault("INSTALL_POLL_MAX_ATTEMPTS", 150)
	viper.SetDefault("INSTALL_POLL_MAX_MINUTES", 5)

	// Rate limit defaults: 5 login attempts / 15 min, 3 resets / hour, 60 API calls / min
	viper.SetDefault("LOGIN_RATE_LIMIT", 5)
	viper.SetDefault("LOGIN_RATE_WINDOW_MIN", 15)
	viper.SetDefault("RESET_RATE_LIMIT", 3)
	viper.SetDefault("RESET_RATE_WINDOW_MIN", 60)
	viper.SetDefault("API_RATE_LIMIT", 60)
	viper.SetDefault("API_RATE_WINDOW_SEC", 60)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.AdminPassword == "" {
			return fmt.Errorf("ADMIN_PASSWORD must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	return nil
}

// ActivityTimeout returns the activity backend request timeout
func (c *Config) ActivityTimeout() time.Duration {
	return time.Duration(c.ActivityTimeoutSec) * time.Second
}

// InstallPollInterval returns the installation polling interval
func (c *Config) InstallPollInterval() time.Duration {
	return time.Duration(c.InstallPollIntervalSec) * time.Second
}

// InstallPollMaxDuration returns the installation polling wall-clock bound
func (c *Config) InstallPollMaxDuration() time.Duration {
	return time.Duration(c.InstallPollMaxMinutes) * time.Minute
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

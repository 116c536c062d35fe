package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"client-portal-backend/internal/config"
	"client-portal-backend/internal/database"
	"client-portal-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// WhitelistData mirrors one allow-list entry in the seed file
type WhitelistData struct {
	Email              string  `yaml:"email"`
	IsWhitelisted      *bool   `yaml:"is_whitelisted,omitempty"`
	OnboardingComplete bool    `yaml:"onboarding_complete,omitempty"`
	StartupName        *string `yaml:"startup_name,omitempty"`
	HasLaunchedToken   *bool   `yaml:"has_launched_token,omitempty"`
	HasLiveToken       *bool   `yaml:"has_live_token,omitempty"`
	TokenContract      *string `yaml:"token_contract,omitempty"`
}

// WhitelistFile is the top-level shape of scripts/data/whitelist.yaml
type WhitelistFile struct {
	Whitelist []WhitelistData `yaml:"whitelist"`
}

func main() {
	log.Println("Loading initial whitelist data from YAML...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadWhitelist(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load whitelist data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadWhitelist(db *gorm.DB, dataDir string) error {
	path := filepath.Join(dataDir, "whitelist.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No seed file at %s, nothing to do", path)
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file WhitelistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	created := 0
	for _, entry := range file.Whitelist {
		if entry.Email == "" {
			log.Printf("Skipping entry with empty email")
			continue
		}

		row := models.WhitelistEntry{
			Email:              entry.Email,
			IsWhitelisted:      true,
			OnboardingComplete: entry.OnboardingComplete,
			StartupName:        entry.StartupName,
			HasLaunchedToken:   entry.HasLaunchedToken,
			HasLiveToken:       entry.HasLiveToken,
			TokenContract:      entry.TokenContract,
		}
		if entry.IsWhitelisted != nil {
			row.IsWhitelisted = *entry.IsWhitelisted
		}

		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"is_whitelisted", "onboarding_complete", "startup_name",
				"has_launched_token", "has_live_token", "token_contract", "updated_at",
			}),
		}).Create(&row).Error
		if err != nil {
			log.Printf("Failed to upsert whitelist entry %s: %v", entry.Email, err)
			continue
		}
		created++
	}

	log.Printf("Upserted %d whitelist entries", created)
	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port  string
	Debug bool

	// Report generation
	ReportSweepSchedule string // cron expression for the ended-event sweep
	ReportWindowHours   int    // how close to the end date a report may be generated

	// Azure Storage configuration (report archive)
	StorageAccount   string
	StorageContainer string

	// Notification configuration
	WebhookURL        string
	NotificationEmail string
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string

	// Social polling credentials
	TwitterBearerToken   string
	InstagramAccessToken string
	LinkedInAccessToken  string
	PollIntervalMinutes  int

	// Ingestion
	EnableSocialPolling bool
	EnableNotifications bool
	Keywords            []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		Debug: getBoolEnv("DEBUG", false),

		ReportSweepSchedule: getEnv("REPORT_SWEEP_SCHEDULE", "0 0 * * * *"),
		ReportWindowHours:   getIntEnv("REPORT_WINDOW_HOURS", 24),

		StorageAccount:   getEnv("AZURE_STORAGE_ACCOUNT", ""),
		StorageContainer: getEnv("AZURE_STORAGE_CONTAINER", "reports"),

		WebhookURL:        getEnv("WEBHOOK_URL", ""),
		NotificationEmail: getEnv("NOTIFICATION_EMAIL", ""),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getIntEnv("SMTP_PORT", 587),
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),

		TwitterBearerToken:   getEnv("TWITTER_BEARER_TOKEN", ""),
		InstagramAccessToken: getEnv("INSTAGRAM_ACCESS_TOKEN", ""),
		LinkedInAccessToken:  getEnv("LINKEDIN_ACCESS_TOKEN", ""),
		PollIntervalMinutes:  getIntEnv("POLL_INTERVAL_MINUTES", 5),

		EnableSocialPolling: getBoolEnv("ENABLE_SOCIAL_POLLING", false),
		EnableNotifications: getBoolEnv("ENABLE_NOTIFICATIONS", false),
		Keywords:            getSliceEnv("KEYWORDS", nil),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.ReportWindowHours <= 0 {
		return fmt.Errorf("REPORT_WINDOW_HOURS must be positive")
	}

	if c.PollIntervalMinutes <= 0 {
		return fmt.Errorf("POLL_INTERVAL_MINUTES must be positive")
	}

	if c.EnableNotifications && c.WebhookURL == "" && c.NotificationEmail == "" {
		return fmt.Errorf("at least one notification method must be configured (WEBHOOK_URL or NOTIFICATION_EMAIL)")
	}

	if c.NotificationEmail != "" {
		if c.SMTPHost == "" || c.SMTPUsername == "" || c.SMTPPassword == "" {
			return fmt.Errorf("SMTP configuration is required when NOTIFICATION_EMAIL is set")
		}
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

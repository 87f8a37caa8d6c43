package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string

	// Optional operator log destination for lifecycle messages
	LogGuildID   string
	LogChannelID string

	// Database configuration
	DatabaseURL string

	// Mail transport configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	// Minimum interval between two notification sends for one guild
	CooldownWindow time.Duration

	// Logging
	LogLevel string

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		LogGuildID:   os.Getenv("LOG_GUILD_ID"),
		LogChannelID: os.Getenv("LOG_CHANNEL_ID"),

		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Mail transport
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     587,
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     os.Getenv("MAIL_FROM"),

		// Defaults
		CooldownWindow: time.Hour,
		LogLevel:       os.Getenv("LOG_LEVEL"),

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if port := os.Getenv("SMTP_PORT"); port != "" {
		if parsedPort, err := strconv.Atoi(port); err == nil {
			config.SMTPPort = parsedPort
		}
	}
	if minutes := os.Getenv("COOLDOWN_MINUTES"); minutes != "" {
		if parsedMinutes, err := strconv.Atoi(minutes); err == nil && parsedMinutes > 0 {
			config.CooldownWindow = time.Duration(parsedMinutes) * time.Minute
		}
	}

	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.SMTPHost == "" {
			return nil, fmt.Errorf("SMTP_HOST is required")
		}
		if config.MailFrom == "" {
			return nil, fmt.Errorf("MAIL_FROM is required")
		}
	}

	return config, nil
}

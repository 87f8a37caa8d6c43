package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"herald/bot"
	"herald/config"
	"herald/database"
	"herald/events"
	"herald/mailer"
	"herald/repository"
	"herald/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	// Load configuration
	cfg := config.Get()

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	log.Info("Starting notification bot...")

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established successfully")

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize repositories
	messageRepo := repository.NewMessageRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	guildModeRepo := repository.NewGuildModeRepository(db)
	cooldownRepo := repository.NewCooldownRepository(db)
	excludedChannelRepo := repository.NewExcludedChannelRepository(db)

	// Initialize mail transport
	smtpMailer := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	// Initialize services
	log.Info("Initializing services...")
	rateLimiter := service.NewRateLimiter(cooldownRepo, guildModeRepo, cfg.CooldownWindow)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, eventBus)
	exclusionService := service.NewExclusionService(excludedChannelRepo)
	guildModeService := service.NewGuildModeService(guildModeRepo)
	deliveryService := service.NewDeliveryService(subscriptionRepo, rateLimiter, smtpMailer, cfg.MailFrom)
	notificationService := service.NewNotificationService(exclusionService, rateLimiter, deliveryService, messageRepo, eventBus)
	log.Info("Services initialized successfully")

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:        cfg.DiscordToken,
		LogGuildID:   cfg.LogGuildID,
		LogChannelID: cfg.LogChannelID,
	}
	discordBot, err := bot.New(botConfig, subscriptionService, exclusionService, guildModeService, deliveryService, notificationService, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Info("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}

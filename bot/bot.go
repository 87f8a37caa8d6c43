package bot

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"herald/events"
	"herald/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token string

	// Optional guild/channel to receive operator log messages
	LogGuildID   string
	LogChannelID string
}

type commandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate)

type Bot struct {
	config              Config
	session             *discordgo.Session
	subscriptionService service.SubscriptionService
	exclusionService    service.ExclusionService
	guildModeService    service.GuildModeService
	deliveryService     service.DeliveryService
	notificationService service.NotificationService
	eventBus            *events.Bus
	handlers            map[string]commandHandler
}

func New(
	config Config,
	subscriptionService service.SubscriptionService,
	exclusionService service.ExclusionService,
	guildModeService service.GuildModeService,
	deliveryService service.DeliveryService,
	notificationService service.NotificationService,
	eventBus *events.Bus,
) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	bot := &Bot{
		config:              config,
		session:             dg,
		subscriptionService: subscriptionService,
		exclusionService:    exclusionService,
		guildModeService:    guildModeService,
		deliveryService:     deliveryService,
		notificationService: notificationService,
		eventBus:            eventBus,
	}

	// Command registry: one handler per slash command name
	bot.handlers = map[string]commandHandler{
		"ping":                bot.handlePing,
		"register":            bot.handleRegister,
		"cancel":              bot.handleCancel,
		"check":               bot.handleCheck,
		"mode":                bot.handleMode,
		"exclusion":           bot.handleExclusion,
		"help":                bot.handleHelp,
		"readme":              bot.handleReadme,
		"readme_adminoptions": bot.handleReadmeAdminOptions,
	}

	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleMessageCreate)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Mirror completed fan-outs to the operator log channel
	eventBus.Subscribe(events.EventTypeNotificationSent, func(ctx context.Context, event events.Event) {
		sent, ok := event.(events.NotificationSentEvent)
		if !ok {
			return
		}
		bot.sendOperatorLog(fmt.Sprintf("Notified %d subscriber(s) in %s (%d failed).", sent.Sent, sent.GuildName, sent.Failed))
	})

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.WithFields(log.Fields{
		"username": r.User.Username,
	}).Info("Bot connected")

	if err := s.UpdateGameStatus(0, "/help"); err != nil {
		log.Errorf("Failed to set activity: %v", err)
	}

	b.sendOperatorLog("Notification bot started.")
}

// sendOperatorLog posts a line to the configured log channel, if any
func (b *Bot) sendOperatorLog(message string) {
	if b.config.LogChannelID == "" {
		return
	}
	if _, err := b.session.ChannelMessageSend(b.config.LogChannelID, message); err != nil {
		log.Errorf("Failed to send operator log message: %v", err)
	}
}

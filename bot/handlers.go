package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"herald/service"

	"github.com/bwmarrin/discordgo"
)

// handleCommands dispatches slash commands through the handler registry
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	handler, ok := b.handlers[i.ApplicationCommandData().Name]
	if !ok {
		return
	}
	handler(s, i)
}

func (b *Bot) handlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.respond(s, i, "Pong!", false)
}

func (b *Bot) handleRegister(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		b.respondWithError(s, i, "Please provide an email address.")
		return
	}
	email := options[0].StringValue()

	err := b.subscriptionService.Register(ctx, i.Member.User.ID, i.GuildID, email)
	switch {
	case errors.Is(err, service.ErrInvalidEmail):
		b.respondWithError(s, i, "Invalid email address.")
		return
	case errors.Is(err, service.ErrDuplicateSubscription):
		b.respondWithError(s, i, "That address is already registered for this server.")
		return
	case err != nil:
		log.Errorf("Error registering subscription: %v", err)
		b.respondWithError(s, i, "Failed to set up email notifications. Please try again.")
		return
	}

	b.respond(s, i, "Email notifications have been set up.", true)

	// Confirmation mail is best-effort; the subscription is already persisted
	guildName := b.guildName(s, i.GuildID)
	go func() {
		if err := b.deliveryService.SendConfirmation(context.Background(), guildName, email); err != nil {
			log.Errorf("Error sending confirmation mail: %v", err)
		}
	}()
}

func (b *Bot) handleCancel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	if err := b.subscriptionService.Unregister(ctx, i.Member.User.ID, i.GuildID); err != nil {
		log.Errorf("Error cancelling subscription: %v", err)
		b.respondWithError(s, i, "Failed to cancel email notifications. Please try again.")
		return
	}

	b.respond(s, i, "Email notifications have been cancelled.", true)
}

func (b *Bot) handleCheck(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	email, err := b.subscriptionService.Status(ctx, i.Member.User.ID, i.GuildID)
	if err != nil {
		log.Errorf("Error checking subscription status: %v", err)
		b.respondWithError(s, i, "Failed to check your registration status. Please try again.")
		return
	}

	if email == "" {
		b.respond(s, i, "You have no email notifications registered for this server.", true)
		return
	}
	b.respond(s, i, fmt.Sprintf("Email notifications for this server are registered to %s.", email), true)
}

func (b *Bot) handleMode(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	if !isAdministrator(i) {
		b.respondWithError(s, i, "This action requires administrator permissions.")
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		b.respondWithError(s, i, "Please provide a mode type.")
		return
	}
	devMode := options[0].StringValue() == "dev"

	if err := b.guildModeService.Set(ctx, i.GuildID, devMode); err != nil {
		log.Errorf("Error setting guild mode: %v", err)
		b.respondWithError(s, i, "Failed to set the server mode. Please try again.")
		return
	}

	mode := "production"
	if devMode {
		mode = "development"
	}
	b.respond(s, i, fmt.Sprintf("Server mode changed to %s.", mode), true)
}

func (b *Bot) handleExclusion(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	if !isAdministrator(i) {
		b.respondWithError(s, i, "This action requires administrator permissions.")
		return
	}

	var action string
	var channel *discordgo.Channel
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "action":
			action = opt.StringValue()
		case "channel":
			channel = opt.ChannelValue(s)
		}
	}

	if (action == "add" || action == "remove") && channel == nil {
		b.respondWithError(s, i, "Please specify a channel.")
		return
	}

	switch action {
	case "add":
		if err := b.exclusionService.Add(ctx, i.GuildID, channel.ID); err != nil {
			log.Errorf("Error adding channel exclusion: %v", err)
			b.respondWithError(s, i, "Failed to exclude the channel. Please try again.")
			return
		}
		b.respond(s, i, fmt.Sprintf("<#%s> has been added to the notification exclusion list.", channel.ID), true)

	case "remove":
		err := b.exclusionService.Remove(ctx, i.GuildID, channel.ID)
		if errors.Is(err, service.ErrNotFound) {
			b.respondWithError(s, i, fmt.Sprintf("<#%s> is not on the exclusion list.", channel.ID))
			return
		}
		if err != nil {
			log.Errorf("Error removing channel exclusion: %v", err)
			b.respondWithError(s, i, "Failed to remove the exclusion. Please try again.")
			return
		}
		b.respond(s, i, fmt.Sprintf("<#%s> has been removed from the exclusion list.", channel.ID), true)

	case "list":
		channelIDs, err := b.exclusionService.List(ctx, i.GuildID)
		if err != nil {
			log.Errorf("Error listing channel exclusions: %v", err)
			b.respondWithError(s, i, "Failed to list excluded channels. Please try again.")
			return
		}
		if len(channelIDs) == 0 {
			b.respond(s, i, "No channels are excluded.", true)
			return
		}

		mentions := make([]string, len(channelIDs))
		for idx, channelID := range channelIDs {
			mentions[idx] = fmt.Sprintf("<#%s>", channelID)
		}
		b.respond(s, i, "Excluded channels:\n"+strings.Join(mentions, "\n"), true)
	}
}

func (b *Bot) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	help := strings.Join([]string{
		"**Available commands:**",
		"- `/ping` - Check that the bot is responding",
		"- `/register [email]` - Register email notifications (email is required)",
		"- `/cancel` - Cancel email notifications",
		"- `/check` - Check your notification registration status",
		"- `/help` - Show this help message",
	}, "\n")
	b.respond(s, i, help, true)
}

func (b *Bot) handleReadme(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !isAdministrator(i) {
		b.respondWithError(s, i, "This action requires administrator permissions.")
		return
	}

	readme := strings.Join([]string{
		"## This bot sends email notifications when new messages are posted",
		"Notifications are sent at most once per hour, so your inbox will not flood.",
		"Channels can also be excluded so low-priority channels never notify.",
		"Note: exclusions are configured per server by an administrator.",
		"**Available commands:**",
		"- `/ping` - Check that the bot is responding",
		"- `/register [email]` - Register email notifications (email is required)",
		"- `/cancel` - Cancel email notifications",
		"- `/check` - Check your notification registration status",
		"- `/help` - Show the help message",
	}, "\n")

	if _, err := s.ChannelMessageSend(i.ChannelID, readme); err != nil {
		log.Errorf("Error posting readme: %v", err)
		b.respondWithError(s, i, "Failed to post the introduction.")
		return
	}
	b.respond(s, i, "Posted the introduction.", true)
}

func (b *Bot) handleReadmeAdminOptions(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !isAdministrator(i) {
		b.respondWithError(s, i, "This action requires administrator permissions.")
		return
	}

	adminHelp := strings.Join([]string{
		"**Administrator commands:**",
		"- `/mode [type]` - Set the server mode",
		"  - `production`: normal notification rate limiting",
		"  - `development`: no rate limiting",
		"- `/exclusion [action] [channel]` - Manage channel exclusions",
		"  - `add`: add a channel to the exclusion list",
		"  - `remove`: remove a channel from the exclusion list",
		"  - `list`: show excluded channels",
	}, "\n")
	b.respond(s, i, adminHelp, true)
}

// isAdministrator reports whether the invoking member has administrator permissions
func isAdministrator(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

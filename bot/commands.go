package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Replies with pong!",
		},
		{
			Name:        "register",
			Description: "Register an email address for message notifications",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "email",
					Description: "Email address to receive notifications",
					Required:    true,
				},
			},
		},
		{
			Name:        "cancel",
			Description: "Cancel email notifications for this server",
		},
		{
			Name:        "check",
			Description: "Check your email notification registration status",
		},
		{
			Name:        "mode",
			Description: "Set server mode (admin only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "Server mode type",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "production", Value: "prod"},
						{Name: "development", Value: "dev"},
					},
				},
			},
		},
		{
			Name:        "exclusion",
			Description: "Manage channel exclusion settings (admin only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "action",
					Description: "Action to perform",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "add", Value: "add"},
						{Name: "remove", Value: "remove"},
						{Name: "list", Value: "list"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "Target channel",
					Required:    false, // not needed for list
				},
			},
		},
		{
			Name:        "help",
			Description: "Show all available commands and their descriptions",
		},
		{
			Name:        "readme",
			Description: "Post an introduction of the bot to this channel (admin only)",
		},
		{
			Name:        "readme_adminoptions",
			Description: "Show administrator-only commands and their descriptions (admin only)",
		},
	}

	for _, command := range commands {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", command); err != nil {
			return fmt.Errorf("failed to register command %s: %w", command.Name, err)
		}
	}

	return nil
}

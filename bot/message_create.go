package bot

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"herald/models"

	"github.com/bwmarrin/discordgo"
)

// handleMessageCreate forwards guild messages to the notification pipeline
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore DMs and the bot's own messages
	if m.GuildID == "" || m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}

	event := &models.MessageEvent{
		ID:          m.ID,
		GuildID:     m.GuildID,
		GuildName:   b.guildName(s, m.GuildID),
		ChannelID:   m.ChannelID,
		ChannelName: b.channelName(s, m.ChannelID),
		AuthorID:    m.Author.ID,
		AuthorName:  m.Author.Username,
		AuthorIsBot: m.Author.Bot,
		Content:     m.Content,
		PermalinkURL: fmt.Sprintf("https://discord.com/channels/%s/%s/%s",
			m.GuildID, m.ChannelID, m.ID),
	}

	if err := b.notificationService.HandleMessage(context.Background(), event); err != nil {
		log.Errorf("Error handling message %s in guild %s: %v", m.ID, m.GuildID, err)
	}
}

// guildName resolves a guild's name from the session state, falling back to the API
func (b *Bot) guildName(s *discordgo.Session, guildID string) string {
	if guild, err := s.State.Guild(guildID); err == nil {
		return guild.Name
	}
	guild, err := s.Guild(guildID)
	if err != nil {
		log.Warnf("Error resolving guild %s: %v", guildID, err)
		return guildID
	}
	return guild.Name
}

// channelName resolves a channel's name from the session state, falling back to the API
func (b *Bot) channelName(s *discordgo.Session, channelID string) string {
	if channel, err := s.State.Channel(channelID); err == nil {
		return channel.Name
	}
	channel, err := s.Channel(channelID)
	if err != nil {
		log.Warnf("Error resolving channel %s: %v", channelID, err)
		return channelID
	}
	return channel.Name
}

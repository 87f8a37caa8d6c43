package testutil

import (
	"time"

	"herald/models"
)

// CreateTestMessage creates a test message with default values
func CreateTestMessage(id, guildID string) *models.Message {
	return &models.Message{
		ID:        id,
		GuildID:   guildID,
		ChannelID: "200000000000000001",
		AuthorID:  "300000000000000001",
		Content:   "hello from the test suite",
		CreatedAt: time.Now(),
	}
}

// CreateTestMessageInChannel creates a test message in a specific channel
func CreateTestMessageInChannel(id, guildID, channelID string) *models.Message {
	msg := CreateTestMessage(id, guildID)
	msg.ChannelID = channelID
	return msg
}

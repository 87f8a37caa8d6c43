package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// guildModeService implements the GuildModeService interface
type guildModeService struct {
	modes GuildModeRepository
}

// NewGuildModeService creates a new guild mode service
func NewGuildModeService(modes GuildModeRepository) GuildModeService {
	return &guildModeService{modes: modes}
}

// Get returns the guild's development mode flag, default false
func (s *guildModeService) Get(ctx context.Context, guildID string) (bool, error) {
	devMode, err := s.modes.GetDevMode(ctx, guildID)
	if err != nil {
		return false, fmt.Errorf("failed to get guild mode: %w", err)
	}
	return devMode, nil
}

// Set upserts the guild's development mode flag
func (s *guildModeService) Set(ctx context.Context, guildID string, devMode bool) error {
	if err := s.modes.SetDevMode(ctx, guildID, devMode); err != nil {
		return fmt.Errorf("failed to set guild mode: %w", err)
	}

	log.WithFields(log.Fields{
		"guildID": guildID,
		"devMode": devMode,
	}).Info("Updated guild mode")

	return nil
}

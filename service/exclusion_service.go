package service

import (
	"context"
	"fmt"
)

// exclusionService implements the ExclusionService interface
type exclusionService struct {
	exclusions ExcludedChannelRepository
}

// NewExclusionService creates a new exclusion service
func NewExclusionService(exclusions ExcludedChannelRepository) ExclusionService {
	return &exclusionService{exclusions: exclusions}
}

// IsExcluded reports whether the channel is excluded for the guild
func (s *exclusionService) IsExcluded(ctx context.Context, guildID, channelID string) (bool, error) {
	excluded, err := s.exclusions.Exists(ctx, guildID, channelID)
	if err != nil {
		return false, fmt.Errorf("failed to check exclusion: %w", err)
	}
	return excluded, nil
}

// Add excludes a channel. Adding an already-excluded channel succeeds without
// duplicating state.
func (s *exclusionService) Add(ctx context.Context, guildID, channelID string) error {
	if err := s.exclusions.Add(ctx, guildID, channelID); err != nil {
		return fmt.Errorf("failed to add exclusion: %w", err)
	}
	return nil
}

// Remove un-excludes a channel; returns ErrNotFound when the pair is absent
func (s *exclusionService) Remove(ctx context.Context, guildID, channelID string) error {
	removed, err := s.exclusions.Remove(ctx, guildID, channelID)
	if err != nil {
		return fmt.Errorf("failed to remove exclusion: %w", err)
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

// List returns all excluded channel IDs for a guild
func (s *exclusionService) List(ctx context.Context, guildID string) ([]string, error) {
	channelIDs, err := s.exclusions.ListChannelIDs(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exclusions: %w", err)
	}
	return channelIDs, nil
}

package service

import (
	"context"
	"time"

	"herald/events"
	"herald/models"

	"github.com/stretchr/testify/mock"
)

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *models.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// MockSubscriptionRepository is a mock implementation of SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, userID, guildID, email string) error {
	args := m.Called(ctx, userID, guildID, email)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) DeleteByUserAndGuild(ctx context.Context, userID, guildID string) (int64, error) {
	args := m.Called(ctx, userID, guildID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) GetEmailForUser(ctx context.Context, userID, guildID string) (string, error) {
	args := m.Called(ctx, userID, guildID)
	return args.String(0), args.Error(1)
}

func (m *MockSubscriptionRepository) ListDistinctEmails(ctx context.Context, guildID string) ([]string, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockGuildModeRepository is a mock implementation of GuildModeRepository
type MockGuildModeRepository struct {
	mock.Mock
}

func (m *MockGuildModeRepository) GetDevMode(ctx context.Context, guildID string) (bool, error) {
	args := m.Called(ctx, guildID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGuildModeRepository) SetDevMode(ctx context.Context, guildID string, devMode bool) error {
	args := m.Called(ctx, guildID, devMode)
	return args.Error(0)
}

// MockCooldownRepository is a mock implementation of CooldownRepository
type MockCooldownRepository struct {
	mock.Mock
}

func (m *MockCooldownRepository) GetLastSent(ctx context.Context, guildID string) (*time.Time, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockCooldownRepository) UpsertLastSent(ctx context.Context, guildID string, at time.Time) error {
	args := m.Called(ctx, guildID, at)
	return args.Error(0)
}

func (m *MockCooldownRepository) ClaimWindow(ctx context.Context, guildID string, at, cutoff time.Time) (bool, error) {
	args := m.Called(ctx, guildID, at, cutoff)
	return args.Bool(0), args.Error(1)
}

// MockExcludedChannelRepository is a mock implementation of ExcludedChannelRepository
type MockExcludedChannelRepository struct {
	mock.Mock
}

func (m *MockExcludedChannelRepository) Exists(ctx context.Context, guildID, channelID string) (bool, error) {
	args := m.Called(ctx, guildID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockExcludedChannelRepository) Add(ctx context.Context, guildID, channelID string) error {
	args := m.Called(ctx, guildID, channelID)
	return args.Error(0)
}

func (m *MockExcludedChannelRepository) Remove(ctx context.Context, guildID, channelID string) (bool, error) {
	args := m.Called(ctx, guildID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockExcludedChannelRepository) ListChannelIDs(ctx context.Context, guildID string) ([]string, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockMailSender is a mock implementation of MailSender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(ctx context.Context, from, to, subject, body string) error {
	args := m.Called(ctx, from, to, subject, body)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Emit(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}

// MockDeliveryService is a mock implementation of DeliveryService
type MockDeliveryService struct {
	mock.Mock
}

func (m *MockDeliveryService) Deliver(ctx context.Context, guildID string, notification *models.Notification) (*models.DeliveryReport, error) {
	args := m.Called(ctx, guildID, notification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeliveryReport), args.Error(1)
}

func (m *MockDeliveryService) SendConfirmation(ctx context.Context, guildName, email string) error {
	args := m.Called(ctx, guildName, email)
	return args.Error(0)
}

// MockRateLimiter is a mock implementation of RateLimiter
type MockRateLimiter struct {
	mock.Mock
}

func (m *MockRateLimiter) CanSend(ctx context.Context, guildID string) (bool, error) {
	args := m.Called(ctx, guildID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRateLimiter) RecordSend(ctx context.Context, guildID string) error {
	args := m.Called(ctx, guildID)
	return args.Error(0)
}

func (m *MockRateLimiter) TryAcquire(ctx context.Context, guildID string) (bool, error) {
	args := m.Called(ctx, guildID)
	return args.Bool(0), args.Error(1)
}

// MockExclusionService is a mock implementation of ExclusionService
type MockExclusionService struct {
	mock.Mock
}

func (m *MockExclusionService) IsExcluded(ctx context.Context, guildID, channelID string) (bool, error) {
	args := m.Called(ctx, guildID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockExclusionService) Add(ctx context.Context, guildID, channelID string) error {
	args := m.Called(ctx, guildID, channelID)
	return args.Error(0)
}

func (m *MockExclusionService) Remove(ctx context.Context, guildID, channelID string) error {
	args := m.Called(ctx, guildID, channelID)
	return args.Error(0)
}

func (m *MockExclusionService) List(ctx context.Context, guildID string) ([]string, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

package testutil

import (
	"context"

	"yardwords/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) GetUser(userID int64) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SetTheme(userID int64, theme domain.Theme) error {
	args := m.Called(userID, theme)
	return args.Error(0)
}

// MockSpeaker is a mock for tts.Speaker
type MockSpeaker struct {
	mock.Mock
}

func (m *MockSpeaker) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	args := m.Called(ctx, text, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

package repository

import "yardwords/internal/domain"

// UserRepository stores per-user preferences
type UserRepository interface {
	EnsureUserExists(userID int64) error
	GetUser(userID int64) (*domain.User, error)
	SetTheme(userID int64, theme domain.Theme) error
}

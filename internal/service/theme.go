package service

import (
	"fmt"

	"yardwords/internal/domain"
	"yardwords/internal/repository"
)

// ThemeService handles the persisted theme preference
type ThemeService struct {
	userRepo repository.UserRepository
}

// NewThemeService creates a new theme service
func NewThemeService(userRepo repository.UserRepository) *ThemeService {
	return &ThemeService{userRepo: userRepo}
}

// EnsureUserExists creates user record if doesn't exist
func (s *ThemeService) EnsureUserExists(userID int64) error {
	return s.userRepo.EnsureUserExists(userID)
}

// Theme returns the user's current theme
func (s *ThemeService) Theme(userID int64) (domain.Theme, error) {
	user, err := s.userRepo.GetUser(userID)
	if err != nil {
		return "", err
	}
	return user.Theme, nil
}

// Toggle switches between light and dark and stores the result
func (s *ThemeService) Toggle(userID int64) (domain.Theme, error) {
	user, err := s.userRepo.GetUser(userID)
	if err != nil {
		return "", fmt.Errorf("load theme: %w", err)
	}

	next := user.Theme.Toggle()
	if err := s.userRepo.SetTheme(userID, next); err != nil {
		return "", fmt.Errorf("save theme: %w", err)
	}
	return next, nil
}

package postgres

import (
	"database/sql"
	"time"

	"yardwords/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUserExists creates user with the default theme if not exists
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// GetUser returns the stored user; unknown users get the light theme
func (r *UserRepo) GetUser(userID int64) (*domain.User, error) {
	var (
		theme     string
		createdAt time.Time
	)
	query := `SELECT theme, created_at FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&theme, &createdAt)

	if err == sql.ErrNoRows {
		return &domain.User{UserID: userID, Theme: domain.ThemeLight}, nil
	}
	if err != nil {
		return nil, err
	}

	return &domain.User{
		UserID:    userID,
		Theme:     domain.ParseTheme(theme),
		CreatedAt: createdAt,
	}, nil
}

// SetTheme stores the theme, creating the user row when needed
func (r *UserRepo) SetTheme(userID int64, theme domain.Theme) error {
	query := `
		INSERT INTO users (user_id, theme)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET theme = EXCLUDED.theme, updated_at = NOW()
	`
	_, err := r.db.Exec(query, userID, string(theme))
	return err
}

package domain

import "time"

// User represents a bot user and their stored preferences
type User struct {
	UserID    int64
	Theme     Theme
	CreatedAt time.Time
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle          UserState = "idle"
	StateWaitingSearch UserState = "waiting_search"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State UserState
	// Listing is the dictionary view after the last search or sort; nil means the full store
	Listing []Entry
	Query   string
	Page    int
}

package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// User represents an account that can start games
type User struct {
	ID          UserID
	DisplayName string
	IsGuest     bool // true for unregistered users
	CreatedAt   time.Time
}

// RegisteredUser extends User with authentication data
// Stored separately for security (password never in memory with session)
type RegisteredUser struct {
	UserID       UserID
	Email        string // login email (immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

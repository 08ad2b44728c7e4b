package model

import "time"

// SessionID uniquely identifies a game session record
type SessionID string

// GameSession is the persistent record of one game, from start to finish.
// EndedAt is nil while the game is in progress.
type GameSession struct {
	ID        SessionID
	UserID    UserID
	StartedAt time.Time
	EndedAt   *time.Time
}

package redis

import (
	"fmt"

	"github.com/anthonyvouin/icoproject/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "ico"

// Key generation functions for each entity type

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// registeredUserKey returns the Redis key for a RegisteredUser
func registeredUserKey(userID model.UserID) string {
	return fmt.Sprintf("%s:registered_user:%s", keyPrefix, userID)
}

// emailIndexKey returns the Redis key for the email -> user_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// cardsKey returns the Redis key for the card catalog
func cardsKey() string {
	return fmt.Sprintf("%s:cards", keyPrefix)
}

// settingsKey returns the Redis key for the game settings
func settingsKey() string {
	return fmt.Sprintf("%s:settings", keyPrefix)
}

// sessionKey returns the Redis key for a GameSession
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

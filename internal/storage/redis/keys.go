package redis

import (
	"fmt"
	"strings"

	"github.com/msommer/pickem/internal/model"
)

// Key prefix for all contest data
const keyPrefix = "pickem"

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// usersIndexKey returns the Redis key for the SET of all user keys
func usersIndexKey() string {
	return fmt.Sprintf("%s:idx:users", keyPrefix)
}

// accountKey returns the Redis key for an Account
func accountKey(id model.UserID) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, strings.ToLower(username))
}

// emailIndexKey returns the Redis key for the email -> user_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, strings.ToLower(email))
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the SET of all game keys
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// pickKey returns the Redis key for a Pick
func pickKey(userID model.UserID, gameID model.GameID) string {
	return fmt.Sprintf("%s:pick:%s:%s", keyPrefix, userID, gameID)
}

// picksForUserIndexKey returns the Redis key for the SET of a user's picks
func picksForUserIndexKey(userID model.UserID) string {
	return fmt.Sprintf("%s:idx:picks_for_user:%s", keyPrefix, userID)
}

// picksForGameIndexKey returns the Redis key for the SET of a game's picks
func picksForGameIndexKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:idx:picks_for_game:%s", keyPrefix, gameID)
}

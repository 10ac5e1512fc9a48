package model

import "time"

// User is a contest participant's public profile
type User struct {
	ID        UserID `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`

	// Default selections applied by clients when a game has no pick yet
	DefaultFirstGoal PlayerID `json:"default_first_goal,omitempty"`
	DefaultGWG       PlayerID `json:"default_gwg,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Account holds a user's authentication data
// Stored separately so the password hash never travels with the profile
type Account struct {
	UserID       UserID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
